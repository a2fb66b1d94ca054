// Package template personalizes pre-written fill-in-the-blank book templates
// and seeds the built-in ones.
package template

import "strings"

// pronounSet holds every pronoun form a template may reference.
type pronounSet struct {
	heShe     string
	heSheCap  string
	hisHer    string
	hisHerCap string
	himHer    string
}

var (
	masculine = pronounSet{heShe: "he", heSheCap: "He", hisHer: "his", hisHerCap: "His", himHer: "him"}
	feminine  = pronounSet{heShe: "she", heSheCap: "She", hisHer: "her", hisHerCap: "Her", himHer: "her"}
	// Neutral and unrecognized genders use they/them.
	neutral = pronounSet{heShe: "they", heSheCap: "They", hisHer: "their", hisHerCap: "Their", himHer: "them"}
)

func pronounsFor(gender string) pronounSet {
	switch strings.ToLower(gender) {
	case "boy", "male":
		return masculine
	case "girl", "female":
		return feminine
	default:
		return neutral
	}
}
