// Package xhex 提供定宽无符号整数的十六进制包装类型。
//
// 两个泛型族覆盖 8/16/32/64/128 位与指针宽度：
//
//   - [Hex]：包装任意值，零值即 0
//   - [NonZero]：取值范围 [1, max]，所有受检构造路径拒绝 0
//
// 各位宽通过类型别名实例化（[Hex32] = Hex[uint32]，[NonZeroHex128] = NonZero[uint128.Uint128]），
// 128 位整数使用 [lukechampine.com/uint128]。
//
// # 快速示例
//
//	h, err := xhex.Parse[uint32]("ae01f7d")
//	fmt.Println(h.Get())   // 182460285
//	fmt.Println(h)         // ae01f7d
//
//	_, err = xhex.ParseNonZero[uint32]("0")
//	errors.Is(err, xhex.ErrZero) // true
//
// # 规范形式
//
// 输出为小写、无前缀、最少位数的十六进制，0 输出 "0"。[Parse] 仅接受 [0-9a-f]，
// 拒绝大写字母与 "0x" 前缀；前导零允许。对任意值 v 有 Parse(v.String()) == v。
//
// [fmt.Formatter] 额外支持 %X（大写）、%d（十进制）、%#x（0x 前缀）、%q 与宽度填充，
// 这些仅用于展示，不是规范形式。
//
// # 序列化与持久化
//
// 两条桥接路径刻意不对称：
//
//   - 序列化（Text、JSON、BSON，以及基于 TextMarshaler 的 YAML、配置解码）：规范十六进制字符串
//   - 持久化（[database/sql/driver.Valuer] 与 [database/sql.Scanner]）：原生整数，
//     64 位按补码存入 int64，128 位存为 16 字节大端
//
// 示例：
//
//	type Asset struct {
//	    ID xhex.NonZeroHex64 `json:"id" bson:"id"`
//	}
//	json.Marshal(Asset{ID: xhex.MustParseNonZero[uint64]("a3")}) // {"id":"a3"}
//
// # NonZero 的零值
//
// Go 无法禁止结构体零值。未初始化的 NonZero[W]{} 视为无效值：IsValid 返回 false，
// String 返回 ""，MarshalText/MarshalJSON/MarshalBSONValue/Value 返回 [ErrZero]。
// 任何受检路径都不会产生该值。
//
// [NewNonZeroUnchecked] 是唯一不校验的构造函数，调用方须保证参数非零，
// 仅用于可信热路径，不得用于解析结果或外部输入。
//
// # 随机生成
//
// [Rand]/[RandNonZero] 使用 math/rand/v2 全局生成器；[RandFrom]/[RandNonZeroFrom] 接受显式
// [math/rand/v2.Source]。NonZero 族抽到 0 时重新采样。均不适用于密码学场景。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xhex.Parse[uint8]("100")
//	if errors.Is(err, xhex.ErrOverflow) {
//	    // 超出 8 位
//	}
//
// 解析错误为 *[ParseError]，非解析路径的零值错误为 *[RangeError]。
//
// # 并发
//
// 值类型按值传递，并发读取无需加锁。[Hex.Ptr] 与 Set 等价于独占引用，需调用方同步。
package xhex
