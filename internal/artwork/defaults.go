package artwork

// Default returns a fresh copy of the built-in artwork set. It has no court
// illustrations and is therefore in lite mode.
func Default() *Artwork {
	return &Artwork{
		Name:  "classic",
		Mode:  ModeLite,
		Suits: defaultSuits,
		Ranks: defaultRanks,
		Pips:  defaultPips,
	}
}

var defaultSuits = [4]string{
	// spades
	"M0 -500C150 -300 480 -150 480 60C480 240 250 300 60 180C80 320 150 420 250 480L-250 480C-150 420 -80 320 -60 180C-250 300 -480 240 -480 60C-480 -150 -150 -300 0 -500Z",
	// hearts
	"M0 -250C100 -480 480 -450 480 -150C480 100 200 300 0 500C-200 300 -480 100 -480 -150C-480 -450 -100 -480 0 -250Z",
	// diamonds
	"M0 -550L420 0L0 550L-420 0Z",
	// clubs
	"M-230 -250C-230 -377 -127 -480 0 -480C127 -480 230 -377 230 -250C230 -123 127 -20 0 -20C-127 -20 -230 -123 -230 -250Z" +
		"M-500 90C-500 -37 -397 -140 -270 -140C-143 -140 -40 -37 -40 90C-40 217 -143 320 -270 320C-397 320 -500 217 -500 90Z" +
		"M40 90C40 -37 143 -140 270 -140C397 -140 500 -37 500 90C500 217 397 320 270 320C143 320 40 217 40 90Z" +
		"M-60 100L60 100C80 300 150 430 250 500L-250 500C-150 430 -80 300 -60 100Z",
}

var defaultRanks = [14]string{
	"",
	"M-300 450L0 -450L300 450M-180 100L180 100",
	"M-300 -250C-300 -500 300 -500 300 -250C300 0 -300 200 -300 450L300 450",
	"M-300 -450L300 -450L0 -50C400 -50 400 450 0 450C-200 450 -300 350 -300 300",
	"M150 450L150 -450L-300 200L350 200",
	"M300 -450L-250 -450L-300 -50C-100 -150 300 -100 300 180C300 500 -200 500 -300 350",
	"M250 -450C-100 -300 -300 -50 -300 200C-300 500 300 500 300 200C300 -50 -300 -50 -300 200",
	"M-300 -450L300 -450L-100 450",
	"M0 -50C-350 -50 -350 -450 0 -450C350 -450 350 -50 0 -50C-400 -50 -400 450 0 450C400 450 400 -50 0 -50Z",
	"M-250 450C100 300 300 50 300 -200C300 -500 -300 -500 -300 -200C-300 50 300 50 300 -200",
	"M-420 -350L-320 -450L-320 450M180 -450C0 -450 0 450 180 450C360 450 360 -450 180 -450Z",
	"M200 -450L200 250C200 500 -250 500 -250 250",
	"M0 -450C-400 -450 -400 450 0 450C400 450 400 -450 0 -450ZM80 200L320 480",
	"M-250 -450L-250 450M300 -450L-250 100M-80 -80L300 450",
}

// Slots 0-6 sit in the top half and are repeated, rotated, in the bottom
// half; slots 7-10 are drawn once.
var defaultPips = [11]string{
	"",
	"00000000010",
	"01000000000",
	"01000000010",
	"10100000000",
	"10100000010",
	"10100000101",
	"10100001101",
	"10100010101",
	"10111000010",
	"10111100000",
}
