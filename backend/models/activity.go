package models

import "time"

const (
	ActivityLogin  = "login"
	ActivityCreate = "create"
	ActivityUpdate = "update"
	ActivityDelete = "delete"
)

type Activity struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Actor  string    `json:"actor"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}
