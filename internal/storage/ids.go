package storage

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// avatarColors is the palette new members are assigned from.
var avatarColors = []string{
	"#0D9488", "#F43F5E", "#8B5CF6", "#F59E0B",
	"#3B82F6", "#10B981", "#EC4899", "#6366F1",
}

// newID returns a fresh collection-unique ID: millisecond timestamp plus a
// random suffix. Collisions are negligible at this data volume.
func newID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// newReceiptNumber returns a short human-readable receipt reference.
func newReceiptNumber() string {
	year := time.Now().Format("06")
	return fmt.Sprintf("RCP-%s%04d", year, 1000+rand.Intn(9000))
}

func randomAvatarColor() string {
	return avatarColors[rand.Intn(len(avatarColors))]
}
