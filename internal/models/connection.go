package models

// Connection is an undirected networking relationship between two
// users. RequesterID/RecipientID keep the request direction (only the
// recipient may accept or reject); UserLo/UserHi store the pair
// sorted lexically with a composite unique index, so at most one row
// can exist per unordered pair regardless of who initiates or how
// concurrently.
type Connection struct {
	BaseModel
	RequesterID string           `gorm:"not null;index" json:"requester_id"`
	RecipientID string           `gorm:"not null;index" json:"recipient_id"`
	UserLo      string           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"-"`
	UserHi      string           `gorm:"not null;uniqueIndex:idx_connection_pair" json:"-"`
	Status      ConnectionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}

// NormalizePair fills the sorted pair columns from the directed ones.
func (c *Connection) NormalizePair() {
	c.UserLo, c.UserHi = SortPair(c.RequesterID, c.RecipientID)
}

// Involves reports whether the user participates in the connection.
func (c *Connection) Involves(userID string) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}

// PeerOf returns the other participant.
func (c *Connection) PeerOf(userID string) string {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}
