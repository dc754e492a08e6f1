package request

import (
	"strconv"
	"strings"
)

const defaultCoordinateDigits = 10

// trimDouble formats a coordinate degree with a fixed number of
// significant digits, widened by the length of the integer part so
// that large longitudes keep the same fractional precision as small
// latitudes.
func trimDouble(degree float64) string {
	return trimDoubleDigits(degree, defaultCoordinateDigits)
}

func trimDoubleDigits(degree float64, digits int) string {
	s := strconv.FormatFloat(degree, 'g', digits, 64)

	index := strings.Index(s, ".")
	if index == -1 {
		return s
	}
	return strconv.FormatFloat(degree, 'g', digits+index, 64)
}

// marcLanguages maps ISO 639-1 language codes to the 3-letter MARC
// codes the geocoder expects.
var marcLanguages = map[string]string{
	"ar": "ara",
	"bg": "bul",
	"cs": "cze",
	"da": "dan",
	"de": "ger",
	"el": "gre",
	"en": "eng",
	"es": "spa",
	"et": "est",
	"fi": "fin",
	"fr": "fre",
	"he": "heb",
	"hi": "hin",
	"hr": "hrv",
	"hu": "hun",
	"id": "ind",
	"it": "ita",
	"ja": "jpn",
	"ko": "kor",
	"lt": "lit",
	"lv": "lav",
	"ms": "may",
	"nl": "dut",
	"no": "nor",
	"pl": "pol",
	"pt": "por",
	"ro": "rum",
	"ru": "rus",
	"sk": "slo",
	"sl": "slv",
	"sr": "srp",
	"sv": "swe",
	"th": "tha",
	"tr": "tur",
	"uk": "ukr",
	"vi": "vie",
	"zh": "chi",
}

// MarcLanguage resolves a locale name ("fi_FI", "en") to the MARC
// language code. Unknown languages, the empty locale and the "C"
// locale all resolve to English.
func MarcLanguage(locale string) string {
	lang := locale
	if i := strings.IndexAny(lang, "_-"); i != -1 {
		lang = lang[:i]
	}
	lang = strings.ToLower(lang)
	if code, ok := marcLanguages[lang]; ok {
		return code
	}
	return "eng"
}

// AcceptLanguage renders the header value sent with place requests,
// "fi_FI,fi" style.
func AcceptLanguage(locale string) string {
	if locale == "" || locale == "C" {
		locale = "en_US"
	}
	lang := locale
	if i := strings.IndexAny(lang, "_-"); i != -1 {
		lang = lang[:i]
	}
	return locale + "," + lang
}
