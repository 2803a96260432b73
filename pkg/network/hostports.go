package network

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/cuemby/warren/pkg/capsule"
	"github.com/cuemby/warren/pkg/types"
)

// HostPortPublisher manages host mode port publishing using iptables
type HostPortPublisher struct {
	// Track published ports for cleanup
	publishedPorts map[string][]types.PortMapping // capsuleID -> ports
}

// NewHostPortPublisher creates a new host port publisher
func NewHostPortPublisher() *HostPortPublisher {
	return &HostPortPublisher{
		publishedPorts: make(map[string][]types.PortMapping),
	}
}

// PublishPorts sets up iptables rules to forward host ports to container ports
// This implements "host mode" where ports are published only on the node running the capsule
func (p *HostPortPublisher) PublishPorts(capsuleID, capsuleIP string, ports []types.PortMapping) error {
	if len(ports) == 0 {
		return nil
	}

	// Filter for host mode ports only
	var hostPorts []types.PortMapping
	for _, port := range ports {
		if port.PublishMode == types.PublishModeHost {
			hostPorts = append(hostPorts, port)
		}
	}

	if len(hostPorts) == 0 {
		return nil
	}

	// iptables mutation needs root; fail explicitly so the caller can
	// surface the condition instead of half-publishing.
	if err := capsule.RequirePrivileged("host port publishing"); err != nil {
		return err
	}

	// Set up iptables rules for each port
	for _, port := range hostPorts {
		if err := p.setupPortForwarding(capsuleIP, port); err != nil {
			// Clean up any rules we already created
			p.cleanupPorts(capsuleID, hostPorts)
			return fmt.Errorf("failed to setup port forwarding for %d:%d: %w",
				port.HostPort, port.ContainerPort, err)
		}
	}

	// Track ports for cleanup
	p.publishedPorts[capsuleID] = hostPorts

	return nil
}

// UnpublishPorts removes iptables rules for a capsule's published ports
func (p *HostPortPublisher) UnpublishPorts(capsuleID string) error {
	ports, ok := p.publishedPorts[capsuleID]
	if !ok {
		return nil // No ports to clean up
	}

	return p.cleanupPorts(capsuleID, ports)
}

// setupPortForwarding creates iptables DNAT rule for port forwarding
// Rule: host_ip:published_port -> container_ip:target_port
func (p *HostPortPublisher) setupPortForwarding(capsuleIP string, port types.PortMapping) error {
	protocol := strings.ToLower(port.Protocol)
	if protocol == "" {
		protocol = "tcp"
	}

	// iptables -t nat -A PREROUTING -p tcp --dport <host_port> -j DNAT --to-destination <container_ip>:<container_port>
	rule := []string{
		"-t", "nat",
		"-A", "PREROUTING",
		"-p", protocol,
		"--dport", fmt.Sprintf("%d", port.HostPort),
		"-j", "DNAT",
		"--to-destination", fmt.Sprintf("%s:%d", capsuleIP, port.ContainerPort),
	}

	if err := runIPTables(rule); err != nil {
		return fmt.Errorf("failed to add DNAT rule: %w", err)
	}

	// Also add MASQUERADE rule for return traffic
	// iptables -t nat -A POSTROUTING -p tcp -d <container_ip> --dport <container_port> -j MASQUERADE
	masqRule := []string{
		"-t", "nat",
		"-A", "POSTROUTING",
		"-p", protocol,
		"-d", capsuleIP,
		"--dport", fmt.Sprintf("%d", port.ContainerPort),
		"-j", "MASQUERADE",
	}

	if err := runIPTables(masqRule); err != nil {
		// Clean up the DNAT rule we just created
		p.removePortForwarding(capsuleIP, port)
		return fmt.Errorf("failed to add MASQUERADE rule: %w", err)
	}

	// Add rule to allow forwarding
	// iptables -A FORWARD -p tcp -d <container_ip> --dport <container_port> -j ACCEPT
	forwardRule := []string{
		"-A", "FORWARD",
		"-p", protocol,
		"-d", capsuleIP,
		"--dport", fmt.Sprintf("%d", port.ContainerPort),
		"-j", "ACCEPT",
	}

	if err := runIPTables(forwardRule); err != nil {
		// Clean up previously created rules
		p.removePortForwarding(capsuleIP, port)
		return fmt.Errorf("failed to add FORWARD rule: %w", err)
	}

	return nil
}

// removePortForwarding removes iptables rules for a port
func (p *HostPortPublisher) removePortForwarding(capsuleIP string, port types.PortMapping) error {
	protocol := strings.ToLower(port.Protocol)
	if protocol == "" {
		protocol = "tcp"
	}

	// Remove DNAT rule
	dnatRule := []string{
		"-t", "nat",
		"-D", "PREROUTING",
		"-p", protocol,
		"--dport", fmt.Sprintf("%d", port.HostPort),
		"-j", "DNAT",
		"--to-destination", fmt.Sprintf("%s:%d", capsuleIP, port.ContainerPort),
	}
	runIPTables(dnatRule) // Ignore errors on cleanup

	// Remove MASQUERADE rule
	masqRule := []string{
		"-t", "nat",
		"-D", "POSTROUTING",
		"-p", protocol,
		"-d", capsuleIP,
		"--dport", fmt.Sprintf("%d", port.ContainerPort),
		"-j", "MASQUERADE",
	}
	runIPTables(masqRule) // Ignore errors on cleanup

	// Remove FORWARD rule
	forwardRule := []string{
		"-D", "FORWARD",
		"-p", protocol,
		"-d", capsuleIP,
		"--dport", fmt.Sprintf("%d", port.ContainerPort),
		"-j", "ACCEPT",
	}
	runIPTables(forwardRule) // Ignore errors on cleanup

	return nil
}

// cleanupPorts removes all iptables rules for a capsule
func (p *HostPortPublisher) cleanupPorts(capsuleID string, ports []types.PortMapping) error {
	// We need the container IP to clean up, but we don't have it stored
	// For now, we'll try to remove rules by scanning iptables
	// This is a limitation we can improve later by storing container IP

	delete(p.publishedPorts, capsuleID)
	return nil
}

// runIPTables executes an iptables command
func runIPTables(args []string) error {
	cmd := exec.Command("iptables", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("iptables failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// GetPublishedPorts returns the ports currently published for a capsule
func (p *HostPortPublisher) GetPublishedPorts(capsuleID string) []types.PortMapping {
	return p.publishedPorts[capsuleID]
}
