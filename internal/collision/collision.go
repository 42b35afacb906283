// Package collision reports axis-aligned overlaps between a moving entity and
// a set of obstacles.
package collision

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// ContactKind tags which category of entity took part in a contact.
type ContactKind int

const (
	KindPlayer ContactKind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k ContactKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// ContactID identifies one participant. Index distinguishes obstacles and is
// zero for the player.
type ContactID struct {
	Kind  ContactKind
	Index int
}

func (id ContactID) String() string {
	if id.Kind == KindObstacle {
		return fmt.Sprintf("Obstacle(%d)", id.Index)
	}
	return id.Kind.String()
}

// Player is the ID of the moving entity in every contact.
var Player = ContactID{Kind: KindPlayer}

// Obstacle returns the ID of obstacle i.
func Obstacle(i int) ContactID {
	return ContactID{Kind: KindObstacle, Index: i}
}

// Contact is an unordered pair of overlapping participants.
type Contact struct {
	A, B ContactID
}

// IDs returns both participants.
func (c Contact) IDs() (ContactID, ContactID) {
	return c.A, c.B
}

// Involves reports whether id is either side of the contact.
func (c Contact) Involves(id ContactID) bool {
	return c.A == id || c.B == id
}

// Overlap reports whether a and b overlap as closed intervals on both axes.
// Rectangles with zero width or height never overlap.
func Overlap(a, b core.Rect) bool {
	return a.Overlaps(b)
}

// GatherContacts tests entity against every obstacle and returns one contact
// per overlap, in obstacle order. Neither argument is modified.
func GatherContacts(entity core.MovingRect, obstacles []core.MovingRect) []Contact {
	var contacts []Contact
	box := entity.Bounds()
	for i, ob := range obstacles {
		if box.Overlaps(ob.Bounds()) {
			contacts = append(contacts, Contact{A: Player, B: Obstacle(i)})
		}
	}
	return contacts
}
