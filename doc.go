// Package xmac 提供 EUI-48（6 字节 MAC）硬件地址值类型。
//
// xmac 是从 xkit 中独立出来的地址值类型库，只做一件事：
// 用纯值语义承载 6 字节硬件地址，并提供位级分类判断与规范格式输出。
//
//   - 地址属性判断（单播/多播、全局/本地管理、全零、广播）
//   - 规范格式输出（IEEE 大写短线形式 XX-XX-XX-XX-XX-XX）及多种可选格式
//   - 与 [net.HardwareAddr] 的双向字节转换
//   - JSON/Binary/SQL 序列化（字节序列形式，见下方"序列化形式"）
//
// # 快速示例
//
// 构造和格式化：
//
//	addr := xmac.New(0xAC, 0xDE, 0x48, 0x23, 0x45, 0x67)
//	fmt.Println(addr)                                // AC-DE-48-23-45-67
//	fmt.Println(addr.FormatString(xmac.FormatColon)) // ac:de:48:23:45:67
//
// 判断地址类型：
//
//	if addr.IsUnicast() {
//	    // 单播地址
//	}
//	if addr.IsLocallyAdministered() {
//	    // 本地管理地址（虚拟机、容器常见）
//	}
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较（==）、
//     可作 map key、栈分配、无对齐要求（与原始硬件地址缓冲区逐字节对应）
//   - 仅支持 EUI-48（6 字节），不支持 EUI-64（8 字节）
//   - 不提供字符串解析、随机生成、厂商（OUI）数据库查询和地址运算，
//     这些属于上层调用方的职责
//   - 核心字节逻辑零依赖：addr.go/classify.go/special.go 不引入任何
//     格式化或序列化包，格式输出用查表法手写十六进制（不依赖 fmt），
//     序列化接口实现集中在 encoding.go，未使用时会被链接器裁剪
//
// # 零值语义
//
// 与 xkit/pkg/util/xmac 不同，本包没有"无效地址"概念：任何 6 字节
// 组合都是合法地址。零值 Addr{} 即全零地址 00-00-00-00-00-00（nil
// 地址，[Addr.IsZero] 返回 true），它与其他地址一样参与比较、格式化
// 和序列化。上层如需把全零或广播地址排除在业务之外，使用
// [Addr.IsSpecial] 判断。
//
// # 序列化形式
//
// 序列化保持结构（6 个字节值的序列），而非文本形式：
//
//   - JSON：长度为 6 的整数数组，如 [172,222,72,35,69,103]
//   - Binary：原始 6 字节
//   - SQL：6 字节 []byte，适配 BINARY(6) 列
//
// 反序列化只接受同样的字节序列形式。文本形式（"AC-DE-48-…"）仅作
// 展示输出，本包不提供其解析。
//
// # 错误处理
//
// 核心操作全部是全函数，没有错误路径。只有字节序列转换（长度可能
// 不是 6）和反序列化会失败，预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmac.AddrFromSlice(b)
//	if errors.Is(err, xmac.ErrInvalidLength) {
//	    // 长度不是 6 字节
//	}
package xmac
