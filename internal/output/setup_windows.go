//go:build windows

package output

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminalProcessing lets the console interpret ANSI escape sequences
const enableVirtualTerminalProcessing = 0x4

func Setup() {
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		fmt.Printf("Failed to retrieve current console handle: %s\n", err)
		return
	}
	var mode uint32
	err = windows.GetConsoleMode(handle, &mode)
	if err != nil {
		fmt.Printf("Failed to get console mode: %s\n", err)
		return
	}
	mode |= enableVirtualTerminalProcessing
	err = windows.SetConsoleMode(handle, mode)
	if err != nil {
		fmt.Printf("Failed to set console mode: %s\n", err)
	}
}
