package utils

import (
	"encoding/json"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// built-in defaults so the service works without message files; files
	// loaded at startup override these
	bundle.AddMessages(language.English,
		&i18n.Message{
			ID:    "notification.group_created",
			Other: "🎉 You created the group '{{.GroupName}}'! Earned 'Community Builder' achievement!",
		},
		&i18n.Message{
			ID:    "notification.group_joined",
			Other: "🎉 Successfully joined '{{.GroupName}}'! You'll receive weekly challenges.",
		},
		&i18n.Message{
			ID:    "notification.member_join",
			Other: "👋 {{.UserName}} joined your group '{{.GroupName}}'!",
		},
		&i18n.Message{
			ID:    "notification.member_leave",
			Other: "👋 {{.UserName}} left the group '{{.GroupName}}'",
		},
	)
}

// LoadMessageFiles loads every json message file under dir into the shared
// bundle.
func LoadMessageFiles(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return err
		}
	}

	return nil
}

// NewLocalizer returns a localizer for the given languages, falling back to
// English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, append(langs, "en")...)
}
