package utils

import "fmt"

func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return fmt.Sprintf("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return fmt.Sprintf("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return fmt.Sprintf("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return fmt.Sprintf("%.*f K", decimals, number/1000)
	}

	return fmt.Sprintf("%.*f ", decimals, number)
}

// IEC binary units, for memory sizes
func IecUnits(number uint64, decimals int) string {
	const unit = 1024
	if number < unit {
		return fmt.Sprintf("%d B", number)
	}
	div, exp := uint64(unit), 0
	for n := number / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.*f %ciB", decimals, float64(number)/float64(div), "KMGTPE"[exp])
}
