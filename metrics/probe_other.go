//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package metrics

func supplyMillivolts() int { return 0 }
func backlightPercent() int { return -1 }
func signalRSSI() int       { return 0 }

func defaultRouteInterface() string { return "" }
