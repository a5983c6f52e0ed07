package uid

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// GenerateGameID returns a short random id that tags the log lines of one game.
func GenerateGameID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(bytes)
}
