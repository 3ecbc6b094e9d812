package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strings"
	"unicode/utf8"

	"safespace-srv/pkg/discord"
	"safespace-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	}

	if d != nil && err != nil {
		sendDiscordMessageAsync(d, buildReport(c, err.Error(), captureStackTrace()))
	}
	return http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	}
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// PanicError handles a recovered panic value and sends an error response.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stackTrace
}

// sendDiscordMessageAsync never blocks the response; the request context may
// already be done by the time the goroutine runs.
func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				n := DiscordMaxMessageLen
				for n > 0 && !utf8.RuneStart(line[n]) {
					n--
				}
				chunks = append(chunks, line[:n])
				line = line[n:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// buildReport does not include the request body: alert bodies carry user
// locations.
func buildReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============== SAFESPACE SERVICE ERROR ==============\n")
	if c != nil && c.Request != nil {
		sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
		sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
		sb.WriteString("----------------------------------------------------\n")
	}
	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}
