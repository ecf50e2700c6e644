package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/hufftree"
)

const octetStream = "application/octet-stream"

type CodecHandler struct {
	proc    hufftree.Processor
	maxBody int64
}

func NewCodecHandler(p hufftree.Processor, maxBody int64) *CodecHandler {
	return &CodecHandler{proc: p, maxBody: maxBody}
}

func (h *CodecHandler) Compress(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	var out bytes.Buffer
	stats, err := h.proc.Compress(bytes.NewReader(data), &out)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setStats(c, stats)
	c.Data(http.StatusOK, octetStream, out.Bytes())
}

func (h *CodecHandler) Decompress(c *gin.Context) {
	data, ok := h.readBody(c)
	if !ok {
		return
	}
	var out bytes.Buffer
	stats, err := h.proc.Decompress(bytes.NewReader(data), &out)
	if err != nil {
		if isFormatError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setStats(c, stats)
	c.Data(http.StatusOK, octetStream, out.Bytes())
}

func (h *CodecHandler) readBody(c *gin.Context) ([]byte, bool) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body exceeds " + strconv.FormatInt(tooBig.Limit, 10) + " bytes"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func isFormatError(err error) bool {
	return errors.Is(err, hufftree.ErrInvalidFormat) ||
		errors.Is(err, hufftree.ErrMalformedHeader) ||
		errors.Is(err, hufftree.ErrMalformedBody)
}

func setStats(c *gin.Context, stats hufftree.Stats) {
	c.Header("X-Huff-Plain-Bytes", strconv.FormatInt(stats.PlainBytes, 10))
	c.Header("X-Huff-Packed-Bytes", strconv.FormatInt(stats.PackedBytes, 10))
	c.Header("X-Huff-Header-Bits", strconv.FormatInt(stats.HeaderBits, 10))
	c.Header("X-Huff-Body-Bits", strconv.FormatInt(stats.BodyBits, 10))
}
