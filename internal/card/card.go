package card

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Suit is one of the four French suits, in deck order.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Rank is a card rank. Zero is the back of a card.
type Rank int

const (
	Back  Rank = 0
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// SuitNames and RankNames are indexed by Suit and Rank.
var (
	SuitNames = []string{"spades", "hearts", "diamonds", "clubs"}
	RankNames = []string{
		"back", "ace", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "jack", "queen", "king",
	}
)

// Card is a resolved suit/rank pair.
type Card struct {
	Suit Suit
	Rank Rank
}

func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return SuitNames[Spades]
	}
	return SuitNames[s]
}

// Letter returns the single-letter suit code used in card identifiers.
func (s Suit) Letter() string {
	if s < Spades || s > Clubs {
		return "S"
	}
	return "SHDC"[s : s+1]
}

func (r Rank) String() string {
	if r < Back || r > King {
		return "card"
	}
	return RankNames[r]
}

// Letter returns the rank code used in card identifiers ("A", "2".."9", "T", "J", "Q", "K").
// The back of a card has code "B".
func (r Rank) Letter() string {
	if r < Back || r > King {
		return "A"
	}
	return rankLetters[r]
}

var rankLetters = [...]string{"B", "A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}

// IsCourt reports whether r is a jack, queen or king.
func (r Rank) IsCourt() bool {
	return r >= Jack && r <= King
}

// ID returns the compact card identifier, e.g. "AS" or "TH".
func (c Card) ID() string {
	return c.Rank.Letter() + c.Suit.Letter()
}

// Name returns a human readable name such as "queen of hearts".
func (c Card) Name() string {
	if c.Rank == Back {
		return "card back"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// FileName returns the file stem used when exporting a deck, e.g. "spades-ace"
// or "hearts-10".
func (c Card) FileName() string {
	if c.Rank == Back {
		return "back"
	}
	rank := c.Rank.String()
	if c.Rank > Ace && c.Rank <= Ten {
		rank = strconv.Itoa(int(c.Rank))
	}
	return c.Suit.String() + "-" + rank
}

// Deck returns the 52 face cards, suit by suit, ace to king.
func Deck() []Card {
	cards := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Deal returns n distinct cards drawn from a shuffled deck. n is clamped to [0, 52].
func Deal(n int, rng *rand.Rand) []Card {
	cards := Deck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	n = max(0, min(n, len(cards)))
	return cards[:n]
}

// nameToNumber maps card terms to numbers. Suits are offset by 20 so they
// share the table with ranks.
var nameToNumber = map[string]int{
	"ace": 1, "a": 1,
	"two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "t": 10,
	"jack": 11, "j": 11, "queen": 12, "q": 12, "king": 13, "k": 13,
	"spades": 20, "s": 20, "hearts": 21, "h": 21,
	"diamonds": 22, "d": 22, "clubs": 23, "c": 23,
}

// ParseName resolves a rank or suit term to its number. Names and letters are
// case-insensitive; numeric strings are accepted as-is (fractions truncated,
// magnitudes beyond int32 saturated, so "1e30" and "Infinity" stay large).
// Anything unrecognised resolves to 0.
func ParseName(name string) int {
	lower := strings.ToLower(strings.TrimSpace(name))
	if v, ok := nameToNumber[lower]; ok {
		if v > 19 {
			return v - 20
		}
		return v
	}
	f, ok := parseNumber(lower)
	if !ok {
		return 0
	}
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// parseNumber parses s as a float. Out-of-range values come back as ±Inf.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, !math.IsNaN(f)
}

// IsName reports whether name is a known card term or a number.
func IsName(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if _, ok := nameToNumber[lower]; ok {
		return true
	}
	_, ok := parseNumber(lower)
	return ok
}

// ParseFileName is the inverse of FileName. It also accepts rank names and
// letters in place of numbers ("hearts-ten", "clubs-k").
func ParseFileName(stem string) (Card, bool) {
	if strings.EqualFold(stem, "back") {
		return Card{Rank: Back}, true
	}
	suitName, rankName, ok := strings.Cut(strings.ToLower(stem), "-")
	if !ok {
		return Card{}, false
	}
	suit, found := nameToNumber[suitName]
	if !found || suit < 20 {
		return Card{}, false
	}
	rank := ParseName(rankName)
	if !IsName(rankName) || rank < int(Ace) || rank > int(King) {
		return Card{}, false
	}
	return Card{Suit: Suit(suit - 20), Rank: Rank(rank)}, true
}
