package utils

import (
	"runtime"
	"strings"
)

// GetCallerFunctionName retrieves the short name of a function on the call
// stack. skip determines how many stack frames to ascend (0 is
// runtime.Callers itself).
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return "<unknown>"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "<unknown>"
	}
	fullFuncName := frame.Function
	operationName := fullFuncName
	if lastDotIndex := strings.LastIndexByte(fullFuncName, '.'); lastDotIndex != -1 {
		operationName = fullFuncName[lastDotIndex+1:]
	}
	return operationName
}
