package render

import "github.com/arcanaland/cardsmith/internal/artwork"

// Point is a position in card space (viewBox -120 -167 240 334).
type Point struct {
	X, Y float64
}

const (
	pipSize    = 70.0
	pipHalf    = -pipSize / 2          // -35: centre column
	pipQuarter = -pipHalf / 2          // 17.5: right column
	pipLeft    = -pipSize - pipQuarter // -87.5: left column
	// topHalfSlots is the number of slots repeated in the rotated half.
	topHalfSlots = 7
)

// pipSlots returns the anchor of each of the 11 pip slots for rank. Slots
// 0-2 are the top row, 3-4 the middle row, 5-7 the centre column and 8-10
// the card's horizontal centre line.
func pipSlots(rank int, pipY float64) [artwork.PipSlots]Point {
	top := -122.0
	if rank == 9 || rank == 10 {
		top = -130
	}
	mid := -68.5
	top -= pipY
	if pipY != 0 {
		mid -= top / 2.2
	}
	return [artwork.PipSlots]Point{
		{pipLeft, top},
		{pipHalf, top},
		{pipQuarter, top},
		{pipLeft, mid},
		{pipQuarter, mid},
		{pipHalf, -102},
		{pipHalf, -90},
		{pipHalf, -90},
		{pipLeft, pipHalf},
		{pipHalf, pipHalf},
		{pipQuarter, pipHalf},
	}
}

// slotLabels names the pip slots in debug output.
const slotLabels = "abcdefghijk"

// courtMirror[style][variant] reports whether the court artwork is flipped
// horizontally.
var courtMirror = [artwork.CourtStyles][artwork.CourtVariants]bool{
	{true, false, false, false},
	{false, true, false, false},
	{true, true, true, true},
}

// courtSuitAnchor[style][variant] is where the suit symbol sits on the art.
var courtSuitAnchor = [artwork.CourtStyles][artwork.CourtVariants]Point{
	{{-88, -124}, {35.8, -124}, {30, -124}, {30, -124}},
	{{35.8, -124}, {-88, -124}, {30, -124}, {30, -124}},
	{{-88, -124}, {-88, -124}, {-82.5, -124}, {-82.5, -124}},
}

// courtPip is a decorative suit pip drawn inside the detail layer, in the
// layer's 1300x2000 coordinate space.
type courtPip struct {
	size, x, y float64
	rotate     string
}

func cp(size, x, y float64, rotate ...string) courtPip {
	p := courtPip{size: size, x: x, y: y}
	if len(rotate) > 0 {
		p.rotate = rotate[0]
	}
	return p
}

// courtPips[style][variant] are the decorative pips of each court artwork.
var courtPips = [artwork.CourtStyles][artwork.CourtVariants][]courtPip{
	{ // jack
		{cp(90, 1016, -78, "33"), cp(100, 1010, 24, "33"), cp(100, 1004, 140, "33"), cp(130, 332, 492), cp(130, 334, 610)},
		{cp(114, 520, 939), cp(100, 1100, 60, "30"), cp(100, 1100, 160, "30"), cp(100, 440, 430, "30"), cp(160, 370, 560, "30")},
		{cp(200, 550, 903), cp(200, 60, 903), cp(50, 681, 631)},
		{cp(100, 460, 680), cp(100, 460, 800), cp(140, 760, 580)},
	},
	{ // queen
		{cp(130, 300, 1080, "-33"), cp(140, 254, 1250, "-33"), cp(200, 330, 1380, "-33")},
		{cp(80, 1140, 552, "10"), cp(80, 1155, 660, "11"), cp(85, 1240, 660, "17"), cp(95, 1310, 660, "23")},
		{cp(200, 550, 903), cp(180, 399, 420, "35")},
		{cp(150, 25, 1320, "-45"), cp(150, 44, 1480, "-45")},
	},
	{ // king
		{cp(100, 960, 250, "20"), cp(100, 955, 380, "20"), cp(100, 180, 820, "-20"), cp(100, 200, 680, "-20")},
		{cp(100, 694, 870, "-15"), cp(113, 932, 798, "0"), cp(100, 1280, 230, "35")},
		{cp(200, 550, 903), cp(130, 300, 760, "-5"), cp(140, 90, 680, "-20")},
		{cp(100, 1110, 10, "30"), cp(115, 1025, 420, "15"), cp(130, 823, 820)},
	},
}

// Court art block placement in card space.
const (
	courtW = 165.0
	courtH = 261.0
	courtX = -82.0
	courtY = -130.0

	courtSuitSize = 52.0
)

// watermark is printed on the king's hearts variant.
var watermark = struct {
	style, variant int
	text           string
	x, y           float64
}{2, 1, "DE", -45, 102}
