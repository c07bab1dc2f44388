package xhex

import "math/rand/v2"

// Rand 使用进程级默认随机源生成 [Hex]，结果可以是任意位模式（包括 0）。
// 默认随机源为 math/rand/v2 全局生成器，并发安全，不适用于密码学场景。
func Rand[W Word]() Hex[W] {
	return RandFrom[W](nil)
}

// RandFrom 使用 src 生成 [Hex]。src 为 nil 时使用进程级默认随机源。
// 多个 goroutine 共享 src 时由调用方负责同步。
func RandFrom[W Word](src rand.Source) Hex[W] {
	return Hex[W]{w: randWord[W](src)}
}

// RandNonZero 使用进程级默认随机源生成 [NonZero]。
func RandNonZero[W Word]() NonZero[W] {
	return RandNonZeroFrom[W](nil)
}

// RandNonZeroFrom 使用 src 生成 [NonZero]。
// 抽到 0 时丢弃并重新采样，结果在 [1, max(W)] 上均匀分布。
func RandNonZeroFrom[W Word](src rand.Source) NonZero[W] {
	for {
		if w := randWord[W](src); !isZero(w) {
			return NonZero[W]{w: w}
		}
	}
}

// randWord 每次消耗 src 的一个 Uint64（128 位消耗两个），超出位宽的高位被截断。
func randWord[W Word](src rand.Source) W {
	next := rand.Uint64
	if src != nil {
		next = src.Uint64
	}
	lo := next()
	var hi uint64
	if bitsOf[W]() == 128 {
		hi = next()
	}
	return join[W](hi, lo)
}
