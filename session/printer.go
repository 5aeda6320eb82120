package session

import (
	"fmt"
	"io"
	"strings"

	ai "github.com/graphrag-tools/kbchat"
)

const bannerWidth = 80

// printMessage renders one conversation message with a role banner.
func printMessage(w io.Writer, msg ai.Message) {
	fmt.Fprintln(w, banner(roleTitle(msg.Role)))
	fmt.Fprintln(w)

	if msg.Content != "" {
		fmt.Fprintln(w, msg.Content)
	}

	if len(msg.ToolCalls) > 0 {
		fmt.Fprintln(w, "Tool Calls:")
		for _, tc := range msg.ToolCalls {
			fmt.Fprintf(w, "  %s (%s)\n", tc.Name, tc.ID)
			if tc.Arguments != "" {
				fmt.Fprintf(w, "    Args: %s\n", tc.Arguments)
			}
		}
	}

	for _, tr := range msg.ToolResults {
		if tr.IsError {
			fmt.Fprintf(w, "Error: %s\n", tr.Content)
		} else if tr.Content != "" {
			fmt.Fprintln(w, tr.Content)
		}
	}
}

func roleTitle(role ai.Role) string {
	switch role {
	case ai.RoleUser:
		return "Human Message"
	case ai.RoleAssistant:
		return "Ai Message"
	case ai.RoleTool:
		return "Tool Message"
	case ai.RoleSystem:
		return "System Message"
	default:
		return "Message"
	}
}

// banner centers a title in a fixed-width line of equals signs.
func banner(title string) string {
	padded := " " + title + " "
	fill := bannerWidth - len(padded)
	if fill < 2 {
		return padded
	}
	left := fill / 2
	right := fill - left
	return strings.Repeat("=", left) + padded + strings.Repeat("=", right)
}
