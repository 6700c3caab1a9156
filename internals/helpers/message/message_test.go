package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"lms_backend/internals/constants"
)

func TestResolveWithArgs(t *testing.T) {
	p := New(language.English)
	got := p.Resolve(constants.MsgMaxLength, p.Resolve(constants.LabelNote), "100")
	assert.Equal(t, "Note must be shorter than 100 characters.", got)
}

func TestFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, language.English, FromAcceptLanguage("en-US,en;q=0.9").Tag())
	assert.Equal(t, language.Japanese, FromAcceptLanguage("ja").Tag())
	assert.Equal(t, language.Indonesian, FromAcceptLanguage("").Tag())
	assert.Equal(t, language.Indonesian, FromAcceptLanguage("fr-FR").Tag())
}

func TestEveryKeyTranslated(t *testing.T) {
	base := templates[language.Indonesian]
	for tag, msgs := range templates {
		for key := range base {
			_, ok := msgs[key]
			assert.Truef(t, ok, "%s missing %s", tag, key)
		}
	}
}

func TestDefaultLanguage(t *testing.T) {
	p := FromAcceptLanguage("")
	assert.Equal(t, "Hari ini bukan hari pelatihan.", p.Resolve(constants.MsgAttendanceNotWorkDay))
}
