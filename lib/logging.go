package lib

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type LoggerStruct struct {
	Print    func(args ...interface{})
	Flush    func()
	disabled bool
}

var Logger = &LoggerStruct{
	Print: func(args ...interface{}) {
		fmt.Fprint(os.Stderr, args...)
	},
	Flush:    func() {},
	disabled: strings.ToLower(os.Getenv("LOGGING") + " ")[:1] == "n",
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	parts := strings.Split(file, "/")
	if len(parts) >= 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d: ", file, line)
}

func joinArgs(v []interface{}) string {
	var xs []string
	for _, x := range v {
		xs = append(xs, fmt.Sprint(x))
	}
	return strings.Join(xs, " ")
}

func (l *LoggerStruct) Println(v ...interface{}) {
	if !l.disabled {
		l.Print(caller(), joinArgs(v), "\n")
	}
}

func (l *LoggerStruct) Printf(format string, v ...interface{}) {
	if !l.disabled {
		l.Print(fmt.Sprintf(caller()+format, v...))
	}
}

func (l *LoggerStruct) Fatal(v ...interface{}) {
	l.Print(caller(), joinArgs(v), "\n")
	l.Flush()
	os.Exit(1)
}

func (l *LoggerStruct) Fatalf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(caller()+format, v...))
	l.Flush()
	os.Exit(1)
}

var doDebug = os.Getenv("DEBUG") != ""

// Debug logs the wall time of a named operation, and the size of what it
// read when Bytes is set.
type Debug struct {
	start time.Time
	name  string
	Bytes int
}

func (d *Debug) Log() {
	elapsed := time.Since(d.start).Round(time.Microsecond)
	if d.Bytes > 0 {
		Logger.Printf("debug: %s took %s read %s\n", d.name, elapsed, strings.ReplaceAll(humanize.Bytes(uint64(d.Bytes)), " ", ""))
		return
	}
	Logger.Printf("debug: %s took %s\n", d.name, elapsed)
}
