package clock

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultZoneName = "America/Sao_Paulo"

// FallbackZone is used when the configured zone is missing from the host tz database.
var FallbackZone = time.FixedZone("GMT-3", -3*60*60)

// LoadZone resolves the first loadable zone name. With no usable name it
// warns and returns FallbackZone.
func LoadZone(names ...string) *time.Location {
	for _, name := range names {
		if name == "" {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err == nil {
			return loc
		}
		log.Warnf("reference timezone [%s] not available: %s", name, err)
	}
	log.Warnf("using fallback reference timezone %s", FallbackZone)
	return FallbackZone
}
