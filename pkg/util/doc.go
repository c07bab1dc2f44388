// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xhex: 定宽十六进制整数值类型，解析、格式化、随机生成、序列化与数据库桥接
//
// 设计原则：
//   - 值类型优先，零依赖全局状态
//   - 文本形式与存储形式相互独立
package util
