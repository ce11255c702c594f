package models

type Admin struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	PassHash []byte `json:"-"`
}
