package game

// FrameScheduler 逐帧回调列表，实现 behavior.FrameScheduler
type FrameScheduler struct {
	handlers []func()
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// OnUpdate 注册逐帧回调，按注册顺序调用
func (s *FrameScheduler) OnUpdate(handler func()) {
	s.handlers = append(s.handlers, handler)
}

// Tick 调用一次所有回调
func (s *FrameScheduler) Tick() {
	for _, handler := range s.handlers {
		handler()
	}
}

// Len 已注册的回调数量
func (s *FrameScheduler) Len() int {
	return len(s.handlers)
}
