//go:build !mobile

package utils

import "os"

// IsMobile 是否以移动端模式运行
// 桌面端默认 false，设置 AIRHOCKEY_MOBILE_EMULATE=1 可在桌面调试触屏布局
func IsMobile() bool {
	return os.Getenv("AIRHOCKEY_MOBILE_EMULATE") == "1"
}
