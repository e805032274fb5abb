package xmac

// Addr 表示 48 位硬件地址（EUI-48/MAC-48）。
//
// Addr 是纯值类型：
//   - 任何 6 字节组合都是合法地址，零值 Addr{} 即全零（nil）地址
//   - 可直接比较（==）和用作 map key，排序按字节序（见 [Addr.Compare]）
//   - 独立副本之间互不影响，跨 goroutine 各持副本读写无需加锁
//
// 字节 0 是线路上最先传输的八位组，承载多播位（bit 0）和本地管理位
// （bit 1）。
type Addr struct {
	// 使用固定大小数组而非切片：
	// 1. 值语义，可比较，可作为 map key
	// 2. 栈分配，零堆开销
	// 3. 编译期大小检查，内存布局即 6 个连续字节（对齐 1，无填充）
	bytes [6]byte
}

// New 从 6 个八位组（传输顺序）创建地址。
// 任何取值组合都合法，不做校验。
func New(a, b, c, d, e, f byte) Addr {
	return Addr{bytes: [6]byte{a, b, c, d, e, f}}
}

// AddrFrom6 从 6 字节数组创建地址（拷贝入参）。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回地址的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// MutableBytes 返回内部存储的可写切片视图（长度始终为 6）。
// 与 [Addr.Bytes] 不同，返回值与 a 共享底层存储：通过它写入会直接
// 改变地址本身，不做任何再校验（任何字节组合都合法）。
func (a *Addr) MutableBytes() []byte {
	return a.bytes[:]
}

// Compare 按字节序（网络字节序/大端）比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := 0; i < 6; i++ {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}
