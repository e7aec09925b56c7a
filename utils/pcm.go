// SPDX-License-Identifier: EPL-2.0

// Package utils converts between normalized float32 samples and the integer
// PCM encodings stored in WAV data chunks.
package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to signed 16-bit.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Int16ToFloat32 maps a signed 16-bit sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Uint8ToFloat32 maps an unsigned 8-bit sample, centered on 128, to [-1, 1).
func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128) / 128.0
}

// Float32ToUint8 clamps x to [-1, 1] and scales it to unsigned 8-bit.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return uint8(128 + int(x*127.0))
}
