package xmac

// broadcastAddr 返回内部使用的广播地址。
//
// 设计决策: 使用函数而非包级变量。虽然 Addr 是值类型（[6]byte 数组），
// 包级变量不会被调用方意外修改（返回的是副本），但函数形式更明确地表达
// "只读常量"的意图，且编译器会将此函数内联（零运行时开销）。
func broadcastAddr() Addr { return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} }

// Zero 返回全零（nil）地址 00-00-00-00-00-00。
// 与零值 Addr{} 相同。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 FF-FF-FF-FF-FF-FF。
// 用于向局域网内所有设备发送数据。
func Broadcast() Addr { return broadcastAddr() }
