package mos6502

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)
