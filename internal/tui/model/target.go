package model

import bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"

// Target names a conversation by counterpart user id or channel id.
type Target struct {
	Counterpart string
	Channel     string
}

// Proto returns the wire form.
func (t Target) Proto() *bondlyv1.Target {
	return &bondlyv1.Target{Counterpart: t.Counterpart, Channel: t.Channel}
}
