package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortPair(t *testing.T) {
	lo, hi := SortPair("bbb", "aaa")
	assert.Equal(t, "aaa", lo)
	assert.Equal(t, "bbb", hi)

	lo, hi = SortPair("aaa", "bbb")
	assert.Equal(t, "aaa", lo)
	assert.Equal(t, "bbb", hi)
}

func TestConnectionNormalizePair(t *testing.T) {
	conn := Connection{RequesterID: "zed", RecipientID: "amy"}
	conn.NormalizePair()

	assert.Equal(t, "amy", conn.UserLo)
	assert.Equal(t, "zed", conn.UserHi)

	// Direction is preserved even though the pair is normalized.
	assert.Equal(t, "zed", conn.RequesterID)
	assert.Equal(t, "amy", conn.RecipientID)
}

func TestConnectionPeerOf(t *testing.T) {
	conn := Connection{RequesterID: "a", RecipientID: "b"}

	assert.Equal(t, "b", conn.PeerOf("a"))
	assert.Equal(t, "a", conn.PeerOf("b"))
	assert.True(t, conn.Involves("a"))
	assert.True(t, conn.Involves("b"))
	assert.False(t, conn.Involves("c"))
}

func TestConversationPeerOf(t *testing.T) {
	conv := Conversation{User1ID: "a", User2ID: "b"}

	assert.Equal(t, "b", conv.PeerOf("a"))
	assert.Equal(t, "a", conv.PeerOf("b"))
	assert.False(t, conv.Involves("x"))
}
