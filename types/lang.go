package types

import (
	"fmt"

	"github.com/xybydy/go-mediarss/pkg/record"
	"golang.org/x/text/language"
)

func languageTag(lang record.Optional[string]) (language.Tag, error) {
	s, ok := lang.Get()
	if !ok {
		return language.Und, ErrAbsent
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %v", ErrMalformed, s, err)
	}
	return tag, nil
}
