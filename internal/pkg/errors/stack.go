package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip 스택 수집 시 건너뛸 프레임 수입니다.
// runtime.Callers, captureStack, New/Wrap 계열 함수 3단계를 건너뛰어야
// 에러를 생성한 호출 지점이 0번째 프레임이 됩니다.
const defaultCallerSkip = 3

// maxStackFrames 에러 하나가 보관하는 최대 스택 프레임 수
const maxStackFrames = 5

// StackFrame 단일 호출 지점의 정보입니다.
type StackFrame struct {
	File     string // 파일 이름
	Line     int    // 줄 번호
	Function string // 함수 이름
}

// captureStack 현재 실행 위치의 스택 정보를 수집하여 반환합니다.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
