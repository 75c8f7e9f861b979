package models

// Conversation is keyed by the sorted participant pair
// (User1ID < User2ID lexically, enforced in the repository and by the
// composite unique index), so (A,B) and (B,A) resolve to one row.
type Conversation struct {
	BaseModel
	User1ID string `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user1_id"`
	User2ID string `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user2_id"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Conversation) Involves(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

func (c *Conversation) PeerOf(userID string) string {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// Message ordering is insertion timestamp only; IsRead is flipped in
// bulk when the receiving participant loads the thread.
type Message struct {
	BaseModel
	ConversationID string `gorm:"not null;index" json:"conversation_id"`
	SenderID       string `gorm:"not null;index" json:"sender_id"`
	Body           string `gorm:"not null" json:"body"`
	IsRead         bool   `gorm:"default:false" json:"is_read"`
}
