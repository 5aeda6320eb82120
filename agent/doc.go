// Package agent runs the reasoning loop that connects a chat model to
// a set of tools.
//
// An Agent binds a [kbchat.ChatProvider], a [ToolExecutor], a system
// prompt, and an optional checkpoint adapter. Each call to [Agent.Run]
// executes one turn: the model is invoked with the conversation so
// far, any tool calls it makes are executed and fed back, and the
// cycle repeats until the model answers without tools or the step
// limit is hit. Progress is observable on the returned event channel
// as streamed deltas and conversation snapshots.
package agent
