package models

import "time"

type Commit struct {
	Hash      string
	ShortHash string
	Author    string
	Date      time.Time // committer timestamp
	Summary   string    // first line of the message
}
