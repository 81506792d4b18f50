package lib

import (
	"fmt"
	"os"
	"strings"
)

var Commands = make(map[string]func())

var Args = make(map[string]interface{})

func SplitOnce(s string, sep string) (head, tail string, err error) {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("cannot split once on %q: %s", sep, s)
	}
	return parts[0], parts[1], nil
}

func Exists(pth string) bool {
	_, err := os.Stat(pth)
	return err == nil
}
