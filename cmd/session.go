package main

import (
	"fmt"
	"sync"
)

// session holds the per-user conversation state: the chosen language and,
// while a conversion is pending, the requested direction.
type session struct {
	Lang string // "" until the user picks one
	Mode string // "", modeEthToGreg or modeGregToEth
}

var (
	sessions   = make(map[string]*session)
	sessionsMu sync.Mutex
)

func sessionKey(chatID, userID int64) string {
	return fmt.Sprintf("%d:%d", chatID, userID)
}

func getSession(chatID, userID int64) *session {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	key := sessionKey(chatID, userID)
	s, ok := sessions[key]
	if !ok {
		s = &session{}
		sessions[key] = s
	}
	return s
}

func resetSession(chatID, userID int64) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	delete(sessions, sessionKey(chatID, userID))
}
