package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" _   _           ____                  ", "#818cf8"},
	{"| | | | _____  _|  _ \\ _   _ _ __   ___ ", "#a78bfa"},
	{"| |_| |/ _ \\ \\/ / |_) | | | | '_ \\ / _ \\", "#c084fc"},
	{"|  _  |  __/>  <|  _ <| |_| | | | |  __/", "#e879f9"},
	{"|_| |_|\\___/_/\\_\\_| \\_\\\\__,_|_| |_|\\___|", "#f472b6"},
}

// PrintBanner writes the HexRune banner to w, colored for the terminal's profile.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).EnvColorProfile()
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
