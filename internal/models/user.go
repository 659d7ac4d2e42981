package models

import "encoding/json"

// User is one tracked bot user. The JSON keys are deliberately short: every
// user lives in a single users.json document, so key names dominate its size.
type User struct {
	FirstSeen int64  `json:"t"`
	Username  string `json:"u,omitempty"`
	FirstName string `json:"n,omitempty"`
}

// UnmarshalJSON also accepts the verbose legacy record format
// (user_id/username/first_name, with "N/A" as an empty marker) so that old
// stores keep loading; records are written back in the compact format.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		T int64  `json:"t"`
		U string `json:"u"`
		N string `json:"n"`

		LegacyUsername  string `json:"username"`
		LegacyFirstName string `json:"first_name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	u.FirstSeen = raw.T
	u.Username = raw.U
	u.FirstName = raw.N
	if u.Username == "" && raw.LegacyUsername != "" && raw.LegacyUsername != "N/A" {
		u.Username = raw.LegacyUsername
	}
	if u.FirstName == "" && raw.LegacyFirstName != "" && raw.LegacyFirstName != "N/A" {
		u.FirstName = raw.LegacyFirstName
	}
	return nil
}
