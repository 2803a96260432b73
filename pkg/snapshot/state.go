package snapshot

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cuemby/warren/pkg/types"
)

// captureProcessState walks /proc for pid and its descendants, recording
// PIDs, parentage, and file-descriptor table entries. Register state is
// captured by CRIU inside the memory image; the record here carries what
// the restore path needs to validate the image against a live tree.
func captureProcessState(pid int) (types.ProcessState, error) {
	var state types.ProcessState
	pids, err := descendantPIDs(pid)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	for _, p := range pids {
		rec := types.ProcessRecord{PID: p}
		if ppid, err := readPPID(p); err == nil {
			rec.PPID = ppid
		}
		rec.FileDescs = readFDs(p)
		state.Processes = append(state.Processes, rec)
	}
	return state, nil
}

// descendantPIDs returns pid plus every live descendant, walking
// /proc/<pid>/task/<tid>/children breadth-first.
func descendantPIDs(pid int) ([]int, error) {
	if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err != nil {
		return nil, err
	}
	seen := map[int]bool{pid: true}
	queue := []int{pid}
	order := []int{pid}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		tasks, err := os.ReadDir(fmt.Sprintf("/proc/%d/task", p))
		if err != nil {
			continue
		}
		for _, task := range tasks {
			data, err := os.ReadFile(fmt.Sprintf("/proc/%d/task/%s/children", p, task.Name()))
			if err != nil {
				continue
			}
			for _, f := range strings.Fields(string(data)) {
				child, err := strconv.Atoi(f)
				if err != nil || seen[child] {
					continue
				}
				seen[child] = true
				queue = append(queue, child)
				order = append(order, child)
			}
		}
	}
	return order, nil
}

func readPPID(pid int) (int, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return 0, err
	}
	// Field 4 of /proc/<pid>/stat, after the parenthesized comm which may
	// itself contain spaces.
	s := string(data)
	i := strings.LastIndexByte(s, ')')
	if i < 0 {
		return 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	fields := strings.Fields(s[i+1:])
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	return strconv.Atoi(fields[1])
}

func readFDs(pid int) []types.FileDescriptor {
	dir := fmt.Sprintf("/proc/%d/fd", pid)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var fds []types.FileDescriptor
	for _, e := range entries {
		fd, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		target, err := os.Readlink(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		kind := "file"
		switch {
		case strings.HasPrefix(target, "socket:"):
			kind = "socket"
		case strings.HasPrefix(target, "pipe:"):
			kind = "pipe"
		}
		fds = append(fds, types.FileDescriptor{FD: fd, Path: target, Kind: kind})
	}
	return fds
}

// captureNetworkState records the host-visible interfaces and addresses.
// Connection 5-tuples come from /proc/net inside the capsule's network
// namespace; when that is unreadable the capture degrades to interfaces
// only, which is still enough to recreate the links on restore.
func captureNetworkState() (types.NetworkState, error) {
	var state types.NetworkState
	ifaces, err := net.Interfaces()
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	for _, iface := range ifaces {
		rec := types.NetInterface{
			Name:       iface.Name,
			MACAddress: iface.HardwareAddr.String(),
			MTU:        iface.MTU,
		}
		if addrs, err := iface.Addrs(); err == nil {
			for _, a := range addrs {
				rec.Addresses = append(rec.Addresses, a.String())
			}
		}
		state.Interfaces = append(state.Interfaces, rec)
	}
	state.Connections = readTCPConnections()
	return state, nil
}

// readTCPConnections parses /proc/net/tcp into connection records.
func readTCPConnections() []types.NetConnection {
	data, err := os.ReadFile("/proc/net/tcp")
	if err != nil {
		return nil
	}
	var conns []types.NetConnection
	lines := strings.Split(string(data), "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		local, lport, ok := parseHexAddr(fields[1])
		if !ok {
			continue
		}
		remote, rport, _ := parseHexAddr(fields[2])
		conns = append(conns, types.NetConnection{
			Protocol:   "tcp",
			LocalAddr:  local,
			LocalPort:  lport,
			RemoteAddr: remote,
			RemotePort: rport,
			State:      tcpStateName(fields[3]),
		})
	}
	return conns
}

// parseHexAddr decodes the kernel's little-endian "AABBCCDD:PPPP" form.
func parseHexAddr(s string) (string, int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 8 {
		return "", 0, false
	}
	var octets [4]uint64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(parts[0][i*2:i*2+2], 16, 8)
		if err != nil {
			return "", 0, false
		}
		octets[3-i] = v
	}
	port, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return "", 0, false
	}
	addr := fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3])
	return addr, int(port), true
}

var tcpStates = map[string]string{
	"01": "ESTABLISHED",
	"02": "SYN_SENT",
	"03": "SYN_RECV",
	"04": "FIN_WAIT1",
	"05": "FIN_WAIT2",
	"06": "TIME_WAIT",
	"07": "CLOSE",
	"08": "CLOSE_WAIT",
	"09": "LAST_ACK",
	"0A": "LISTEN",
	"0B": "CLOSING",
}

func tcpStateName(hex string) string {
	if name, ok := tcpStates[strings.ToUpper(hex)]; ok {
		return name
	}
	return "UNKNOWN"
}
