package timezone

import (
	"time"
	_ "time/tzdata" // imagens sem /usr/share/zoneinfo
)

const DefaultTimezone = "America/Sao_Paulo"

// Brasília sem horário de verão (abolido em 2019).
var fallback = time.FixedZone("BRT", -3*60*60)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o fuso da barbearia. Nome vazio ou inválido cai no padrão.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return fallback
}
