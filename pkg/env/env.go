package env

import (
	"fmt"
	"net"
	"os/exec"
	"strings"
)

// CheckResult holds the status of prerequisite checks
type CheckResult struct {
	HasCargo         bool
	HasCargoContract bool
	HasNode          bool
	NodeVer          string
	CargoVer         string
}

// CheckPrerequisites verifies if required tools are installed
func CheckPrerequisites() *CheckResult {
	res := &CheckResult{}

	if out, err := exec.Command("cargo", "--version").Output(); err == nil {
		res.HasCargo = true
		res.CargoVer = strings.TrimSpace(string(out))
	}
	if _, err := exec.LookPath("cargo-contract"); err == nil {
		res.HasCargoContract = true
	}
	if out, err := exec.Command("node", "--version").Output(); err == nil {
		res.HasNode = true
		res.NodeVer = strings.TrimSpace(string(out))
	}

	return res
}

// IsPortAvailable checks if a TCP port is available on the local machine
func IsPortAvailable(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	if err := ln.Close(); err != nil {
		// Non-critical: listener close failure during availability check
		_ = err
	}
	return true
}
