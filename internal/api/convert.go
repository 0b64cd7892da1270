package api

import (
	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/contacts"
	"github.com/bondly/bondly/internal/conversation"
	"github.com/bondly/bondly/internal/notify"
	"github.com/bondly/bondly/internal/store"
)

func contactToProto(c contacts.Contact) *bondlyv1.Contact {
	return &bondlyv1.Contact{Id: c.ID, DisplayName: c.DisplayName, Online: c.Online, Presence: c.Presence()}
}

func messageToProto(self string, m conversation.Message) *bondlyv1.Message {
	return &bondlyv1.Message{
		LocalId:     m.LocalID,
		Id:          m.ID,
		SenderId:    m.SenderID,
		ReceiverId:  m.ReceiverID,
		ChannelId:   m.ChannelID,
		Body:        m.Body,
		CreatedAtMs: m.CreatedAt.UnixMilli(),
		Read:        m.Read,
		State:       m.State.String(),
		Error:       m.Error,
		FromMe:      m.SenderID == self,
	}
}

func cachedToProto(self string, m store.Message) *bondlyv1.Message {
	return messageToProto(self, conversation.FromCache(m))
}

func summaryToProto(self string, s conversation.Summary) *bondlyv1.Conversation {
	return &bondlyv1.Conversation{
		Key:         string(s.Key),
		Counterpart: s.Counterpart,
		Title:       s.Title,
		Last:        messageToProto(self, s.Last),
		Unread:      int32(s.Unread),
		Pending:     int32(s.Pending),
		Failed:      int32(s.Failed),
	}
}

func notificationToProto(n notify.Notification) *bondlyv1.Notification {
	return &bondlyv1.Notification{
		Id:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Summary:     n.Summary,
		Read:        n.Read,
		CreatedAtMs: n.CreatedAt.UnixMilli(),
		Ref:         n.Ref,
	}
}

// keyFor resolves a request target to a conversation key.
func keyFor(self string, t *bondlyv1.Target) (conversation.Key, error) {
	switch {
	case t.GetChannel() != "":
		return conversation.ChannelKey(t.GetChannel()), nil
	case t.GetCounterpart() != "":
		return conversation.DirectKey(self, t.GetCounterpart()), nil
	}
	return "", errNoTarget
}
