package astro

import "math"

// Sign is one of the twelve zodiac signs, each spanning 30 degrees.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs lists the signs in zodiacal order starting at 0° Aries.
var Signs = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Element is a sign's classical element.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Modality is a sign's quality.
type Modality string

const (
	Cardinal Modality = "cardinal"
	Fixed    Modality = "fixed"
	Mutable  Modality = "mutable"
)

// elements repeats fire-earth-air-water around the zodiac.
var elements = [4]Element{Fire, Earth, Air, Water}

// modalities repeat cardinal-fixed-mutable around the zodiac.
var modalities = [3]Modality{Cardinal, Fixed, Mutable}

// rulers maps each sign to its traditional ruling body.
var rulers = [12]Body{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// Index returns the sign's zodiacal index 0-11, or -1 for an unknown sign.
func (s Sign) Index() int {
	for i, known := range Signs {
		if known == s {
			return i
		}
	}
	return -1
}

// Element returns the sign's classical element.
func (s Sign) Element() Element {
	return elements[s.Index()%4]
}

// Modality returns the sign's quality.
func (s Sign) Modality() Modality {
	return modalities[s.Index()%3]
}

// Ruler returns the sign's traditional ruling body.
func (s Sign) Ruler() Body {
	return rulers[s.Index()]
}

// SignIndex returns floor(longitude/30) mod 12 for a longitude in degrees.
func SignIndex(lon float64) int {
	return int(math.Floor(Normalize(lon)/30)) % 12
}

// SignAt returns the sign containing the longitude and the degree within
// that sign. degreeInSign is always in [0, 30).
func SignAt(lon float64) (Sign, float64) {
	n := Normalize(lon)
	idx := SignIndex(n)
	return Signs[idx], n - 30*float64(idx)
}
