package authservice

import (
	"math/rand"
	"strings"
)

// Control phrase shown to the caller and repeated in the signin mail, so the
// recipient can tell the link apart from one triggered by somebody else.

var (
	phraseAdjectives = []string{
		"brave", "curious", "gentle", "mighty", "quiet", "rapid", "shiny", "sturdy", "vivid", "witty",
	}
	phraseVerbs = []string{
		"dancing", "drifting", "gliding", "humming", "leaping", "rolling", "sailing", "spinning", "waving", "wandering",
	}
	phraseNouns = []string{
		"Badger", "Falcon", "Heron", "Lynx", "Marmot", "Otter", "Raven", "Stork", "Walrus", "Zebra",
	}
)

func randomPhrase() string {
	return strings.Join([]string{
		phraseAdjectives[rand.Intn(len(phraseAdjectives))],
		phraseVerbs[rand.Intn(len(phraseVerbs))],
		phraseNouns[rand.Intn(len(phraseNouns))],
	}, " ")
}
