// Command ircmd prints the 32-bit code word for a remote command as
// bare lowercase hex, the exact payload the transmitter firmware reads:
//
//	$ ircmd power
//	66992385
//
// Sending it to the device is left to the shell, e.g.
// ircmd power > /dev/serial/by-id/usb-Jabu_Infrared_1-if00.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/banshee-data/ir.report/internal/config"
	"github.com/banshee-data/ir.report/internal/ircode"
)

func main() {
	configPath := flag.String("config", "", "JSON command-set file overlaying the built-in table")
	raw := flag.Int("raw", -1, "raw command byte (0-255) instead of a named command")
	flag.Parse()

	commands := config.DefaultCommandSet()
	if *configPath != "" {
		var err error
		commands, err = config.LoadCommandSet(*configPath)
		if err != nil {
			log.Fatalf("ircmd: %v", err)
		}
	}

	var cmd byte
	switch {
	case *raw >= 0:
		if *raw > 0xff {
			log.Fatalf("ircmd: raw command byte %d out of range", *raw)
		}
		cmd = byte(*raw)
	case flag.NArg() == 1:
		var err error
		cmd, err = commands.Resolve(flag.Arg(0))
		if err != nil {
			log.Fatalf("ircmd: %v", err)
		}
	default:
		log.Fatalf("usage: ircmd [-config file.json] <%s>  |  ircmd -raw <byte>",
			strings.Join(commands.Names(), "|"))
	}

	fmt.Printf("%x\n", ircode.Word(commands.GetAddress(), cmd))
}
