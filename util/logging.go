package util

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

var LoggingEnabled = false

// LogEndpoint, when set, receives every logged message as a text/plain POST.
var LogEndpoint = ""

// stdout belongs to the language server protocol, so everything goes to stderr
var logger = log.New(os.Stderr, "masmtool: ", log.LstdFlags)

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	message := fmt.Sprintf(format, args...)
	logger.Print(message)
	if LogEndpoint != "" {
		go http.Post(LogEndpoint, "text/plain", strings.NewReader(message))
	}
}

// Warn is always printed, regardless of LoggingEnabled.
func Warn(format string, args ...interface{}) {
	logger.Printf("warning: "+format, args...)
}
