package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/raster"
	"github.com/arcanaland/cardsmith/internal/render"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type cardInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

func cards(c *gin.Context) {
	deck := card.Deck()
	out := make([]cardInfo, 0, len(deck)+1)
	for _, cd := range append(deck, card.Card{Rank: card.Back}) {
		out = append(out, cardInfo{ID: cd.ID(), Name: cd.Name(), File: cd.FileName() + ".svg"})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func attributes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"attributes": render.AttributeNames})
}

// options layers the query attributes over the server defaults.
func (s *Server) options(c *gin.Context) render.Options {
	attrs := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			attrs[strings.ToLower(k)] = v[0]
		}
	}
	return render.FromAttributes(attrs).Merge(s.defaults)
}

// cardOptions resolves a file stem: "{suit}-{rank}", "back", or a card id.
func (s *Server) cardOptions(c *gin.Context, stem string) render.Options {
	o := s.options(c)
	if cd, ok := card.ParseFileName(stem); ok {
		o.CID = ""
		o.Rank = strconv.Itoa(int(cd.Rank))
		if cd.Rank != card.Back {
			o.Suit = strconv.Itoa(int(cd.Suit))
		}
		return o
	}
	o.CID = stem
	return o
}

func (s *Server) card(c *gin.Context) {
	file := c.Param("file")
	ext := path.Ext(file)
	format := strings.ToLower(strings.TrimPrefix(ext, "."))
	o := s.cardOptions(c, strings.TrimSuffix(file, ext))

	switch {
	case format == "svg":
		c.Data(http.StatusOK, raster.ContentType(format), []byte(s.renderer.Render(o)))
	case raster.IsFormat(format):
		width := raster.DefaultWidth
		if w := c.Query("width"); w != "" {
			v, err := strconv.Atoi(w)
			if err != nil || v <= 0 || v > raster.MaxWidth {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("width must be between 1 and %d", raster.MaxWidth)})
				return
			}
			width = v
		}
		l := s.renderer.Layout(o)
		var buf bytes.Buffer
		if err := raster.Encode(&buf, raster.Rasterize(&l, width), format); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, raster.ContentType(format), buf.Bytes())
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unsupported format %q", format)})
	}
}

func (s *Server) uri(c *gin.Context) {
	o := s.options(c)
	o.CID = c.Param("cid")
	c.String(http.StatusOK, "%s", s.renderer.DataURI(o))
}

// qr returns a QR code linking to the card image at the same path under /card.
func (s *Server) qr(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     "/card/" + c.Param("file"),
		RawQuery: c.Request.URL.RawQuery,
	}

	size := 256
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= raster.MaxWidth {
		size = v
	}
	png, err := qrcode.Encode(u.String(), qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// indexTemplate lists every card as a link to its SVG.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>cardsmith</title>
<style>body{background:#2a5;font-family:sans-serif}img{width:120px;margin:4px}</style>
</head><body>
{{range .}}<a href="{{.Src}}"><img src="{{.Src}}" alt="{{.Name}}" title="{{.ID}}"></a>{{if .RowEnd}}<br>{{end}}
{{end}}</body></html>
`))

type indexEntry struct {
	Src, Name, ID string
	RowEnd        bool
}

func (s *Server) index(c *gin.Context) {
	query := ""
	if q := c.Request.URL.RawQuery; q != "" {
		query = "?" + q
	}
	var entries []indexEntry
	for _, cd := range append(card.Deck(), card.Card{Rank: card.Back}) {
		entries = append(entries, indexEntry{
			Src:    "/card/" + cd.FileName() + ".svg" + query,
			Name:   cd.Name(),
			ID:     cd.ID(),
			RowEnd: cd.Rank == card.King,
		})
	}
	c.HTML(http.StatusOK, "index", entries)
}
