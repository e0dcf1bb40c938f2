package updater

import (
	"slices"
	"strings"
)

// Rule maps a core display name pattern to the system the core emulates.
// An empty Pattern only appears on the fallback rule.
type Rule struct {
	Pattern              string
	Manufacturer         string
	ConsoleModel         string
	ConsoleType          string // home, portable, arcade, computer
	ReleaseYear          int
	ManufacturerPriority int // Lower sorts first
	ConsolePriority      int // Lower sorts first within a manufacturer
}

// Rules are matched in order, so a pattern shadows every later pattern
// that contains it (e.g. "Game Boy" catches "Game Boy Color" cores).
var rules = []Rule{
	// Nintendo - Home Consoles
	{"Family Computer", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"Famicom", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"FCEUmm", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"Nestopia", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"QuickNES", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},

	{"Super Nintendo", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"Snes9x", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"bsnes", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"higan", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},

	{"Nintendo 64", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},
	{"Mupen64Plus", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},
	{"ParaLLEl", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},

	{"GameCube", "Nintendo", "Nintendo GameCube", "home", 2001, 1, 40},
	{"Dolphin", "Nintendo", "Nintendo GameCube", "home", 2001, 1, 40},

	{"Wii", "Nintendo", "Nintendo Wii", "home", 2006, 1, 50},

	// Nintendo - Portable Consoles
	{"Game Boy", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"SameBoy", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"Gambatte", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"TGB Dual", "Nintendo", "Game Boy", "portable", 1989, 1, 100},

	{"Game Boy Color", "Nintendo", "Game Boy Color", "portable", 1998, 1, 110},

	{"Game Boy Advance", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"mGBA", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"VBA", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"VBA-M", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},

	{"Nintendo DS", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},
	{"DeSmuME", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},
	{"melonDS", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},

	{"Nintendo 3DS", "Nintendo", "Nintendo 3DS", "portable", 2011, 1, 140},
	{"Citra", "Nintendo", "Nintendo 3DS", "portable", 2011, 1, 140},

	// Sony - Home Consoles
	{"PlayStation", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"PCSX", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"Beetle PSX", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"SwanStation", "Sony", "PlayStation", "home", 1994, 2, 10},

	{"PlayStation 2", "Sony", "PlayStation 2", "home", 2000, 2, 20},
	{"PCSX2", "Sony", "PlayStation 2", "home", 2000, 2, 20},

	{"PlayStation 3", "Sony", "PlayStation 3", "home", 2006, 2, 30},
	{"RPCS3", "Sony", "PlayStation 3", "home", 2006, 2, 30},

	// Sony - Portable Consoles
	{"PlayStation Portable", "Sony", "PlayStation Portable", "portable", 2004, 2, 100},
	{"PPSSPP", "Sony", "PlayStation Portable", "portable", 2004, 2, 100},

	{"PlayStation Vita", "Sony", "PlayStation Vita", "portable", 2011, 2, 110},
	{"Vita3K", "Sony", "PlayStation Vita", "portable", 2011, 2, 110},

	// Sega - Home Consoles
	{"Master System", "Sega", "Sega Master System", "home", 1986, 3, 10},
	{"SMS Plus", "Sega", "Sega Master System", "home", 1986, 3, 10},

	{"Genesis", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"Mega Drive", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"Genesis Plus GX", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"PicoDrive", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},

	{"Sega CD", "Sega", "Sega CD", "home", 1991, 3, 25},

	{"32X", "Sega", "Sega 32X", "home", 1994, 3, 28},

	{"Saturn", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Beetle Saturn", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Yabause", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Kronos", "Sega", "Sega Saturn", "home", 1994, 3, 30},

	{"Dreamcast", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},
	{"Flycast", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},
	{"Redream", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},

	// Sega - Portable Consoles
	{"Game Gear", "Sega", "Sega Game Gear", "portable", 1990, 3, 100},

	// Atari - Home Consoles
	{"Atari 2600", "Atari", "Atari 2600", "home", 1977, 4, 10},
	{"Stella", "Atari", "Atari 2600", "home", 1977, 4, 10},

	{"Atari 5200", "Atari", "Atari 5200", "home", 1982, 4, 20},

	{"Atari 7800", "Atari", "Atari 7800", "home", 1986, 4, 30},
	{"ProSystem", "Atari", "Atari 7800", "home", 1986, 4, 30},

	{"Atari Jaguar", "Atari", "Atari Jaguar", "home", 1993, 4, 40},
	{"Virtual Jaguar", "Atari", "Atari Jaguar", "home", 1993, 4, 40},

	// Atari - Portable Consoles
	{"Atari Lynx", "Atari", "Atari Lynx", "portable", 1989, 4, 100},
	{"Handy", "Atari", "Atari Lynx", "portable", 1989, 4, 100},

	// SNK
	{"Neo Geo", "SNK", "Neo Geo", "home", 1990, 5, 10},
	{"FinalBurn Neo", "SNK", "Neo Geo", "home", 1990, 5, 10},
	{"Neo Geo Pocket", "SNK", "Neo Geo Pocket", "portable", 1998, 5, 100},
	{"RACE", "SNK", "Neo Geo Pocket", "portable", 1998, 5, 100},

	// NEC
	{"PC Engine", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"Beetle PCE", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"TurboGrafx", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"PC-FX", "NEC", "PC-FX", "home", 1994, 6, 20},

	// Bandai
	{"WonderSwan", "Bandai", "WonderSwan", "portable", 1999, 7, 100},
	{"Beetle Cygne", "Bandai", "WonderSwan", "portable", 1999, 7, 100},

	// Arcade
	{"MAME", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},
	{"Final Burn", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},
	{"FBNeo", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},

	// Computer Systems
	{"Commodore 64", "Commodore", "Commodore 64", "computer", 1982, 9, 10},
	{"VICE", "Commodore", "Commodore 64", "computer", 1982, 9, 10},
	{"Amiga", "Commodore", "Amiga", "computer", 1985, 9, 20},
	{"PUAE", "Commodore", "Amiga", "computer", 1985, 9, 20},

	{"MSX", "Microsoft", "MSX", "computer", 1983, 10, 10},
	{"blueMSX", "Microsoft", "MSX", "computer", 1983, 10, 10},

	{"DOS", "IBM", "IBM PC Compatible", "computer", 1981, 11, 10},
	{"DOSBox", "IBM", "IBM PC Compatible", "computer", 1981, 11, 10},
}

// fallbackRule classifies every core no pattern matches
var fallbackRule = Rule{"", "Unknown", "Unknown System", "unknown", 9999, 999, 999}

// Rules returns the classification table, fallback rule last
func Rules() []Rule {
	return append(slices.Clone(rules), fallbackRule)
}

// FallbackRule returns the rule used for unrecognised cores
func FallbackRule() Rule {
	return fallbackRule
}

// Classify returns the first rule whose pattern occurs in displayName.
// Matching is case sensitive.
func Classify(displayName string) Rule {
	if displayName == "" {
		return fallbackRule
	}

	for _, rule := range rules {
		if rule.Pattern != "" && strings.Contains(displayName, rule.Pattern) {
			return rule
		}
	}

	return fallbackRule
}
