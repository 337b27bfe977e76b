package overhead

import "strings"

// Threshold constants from spec.md §4.11.
const (
	emptyThreshold        = 5 * 1024 * 1024   // 5 MiB
	bigPeakRatio          = 1.5
	highFragRatio         = 1.4
	bigClientBufPerClient = 200 * 1024        // 200 KiB
	bigSlaveBufPerReplica = 10 * 1024 * 1024  // 10 MiB
)

// noIssuesMessage and emptyInstanceMessage are the two fixed catalogue
// entries of spec.md §4.11/§6.3 emitted when, respectively, no flags are
// raised, or the instance is judged too small to evaluate meaningfully.
// Their wording is part of the external contract and must stay
// byte-for-byte stable, grounded on the original object.c's doctor
// report catalogue (supplemented feature, see SPEC_FULL.md §3 C9) but
// rephrased in this implementation's own voice rather than reusing the
// source's text.
const (
	noIssuesMessage = "No memory issues detected in this instance. " +
		"This report can only account for what is observable from this process.\n"

	emptyInstanceMessage = "This instance is empty or using very little memory; " +
		"the doctor's heuristics need more data to be meaningful. " +
		"Come back once it holds a representative workload.\n"
)

// bigPeakParagraph, highFragParagraph, bigClientBufParagraph, and
// bigSlaveBufParagraph are the remaining catalogue entries, concatenated
// in this fixed order when their corresponding flag is raised.
const (
	bigPeakParagraph = " * Peak memory: this instance has at some point used more than 150% " +
		"of the memory it currently uses. Allocators are not always able to release " +
		"memory back to the OS after a peak, so a high fragmentation ratio right now " +
		"is likely just the shadow of that earlier peak rather than a live leak. If the " +
		"peak was a one-off and you want the allocator to try reclaiming memory, issue " +
		"MEMORY PURGE; otherwise a restart is the only guaranteed way to shrink RSS.\n\n"

	highFragParagraph = " * High fragmentation: the fragmentation ratio is above 1.4, meaning resident " +
		"memory is significantly larger than the sum of logical allocations. This is usually " +
		"explained by a prior memory peak (see above) or by a workload pattern that fragments " +
		"the allocator's free lists. If there is no peak entry in this report, check that a " +
		"fragmentation-resistant allocator (such as jemalloc) is in use rather than the platform default.\n\n"

	bigSlaveBufParagraph = " * Big replica buffers: replica output buffers average more than 10MB each. " +
		"This usually means a replica is not draining data fast enough, either because it is " +
		"overloaded or because of a network issue, so data is piling up on this instance's " +
		"output buffers. Inspect replica lag and per-replica buffer sizes to find the slow one.\n\n"

	bigClientBufParagraph = " * Big client buffers: normal client output buffers average more than 200K each. " +
		"This can come from pub/sub subscribers that are not consuming fast enough, clients " +
		"requesting very large replies, or long pipelines of queued commands. Inspect the " +
		"connected client list to find which clients are holding the largest buffers.\n\n"
)

const doctorPreamble = "A few issues were detected in this instance's memory usage:\n\n"

const doctorEpilogue = "These are heuristics, not certainties; use MEMORY STATS and INFO memory for the full picture.\n"

// Doctor implements spec.md §4.11's flag computation and paragraph
// catalogue. The flags are evaluated independently once the instance is
// judged non-empty; any subset may be raised simultaneously.
func Doctor(mh Overhead) string {
	if mh.TotalAllocated < emptyThreshold {
		return emptyInstanceMessage
	}

	var bigPeak, highFrag, bigClientBuf, bigSlaveBuf bool

	if mh.PeakAllocated > 0 && float64(mh.PeakAllocated)/float64(mh.TotalAllocated) > bigPeakRatio {
		bigPeak = true
	}
	if mh.Fragmentation > highFragRatio {
		highFrag = true
	}
	if mh.NumNormalClients > 0 && mh.ClientsNormal/int64(mh.NumNormalClients) > bigClientBufPerClient {
		bigClientBuf = true
	}
	if mh.NumReplicas > 0 && mh.ClientsSlaves/int64(mh.NumReplicas) > bigSlaveBufPerReplica {
		bigSlaveBuf = true
	}

	if !bigPeak && !highFrag && !bigClientBuf && !bigSlaveBuf {
		return noIssuesMessage
	}

	var sb strings.Builder
	sb.WriteString(doctorPreamble)
	if bigPeak {
		sb.WriteString(bigPeakParagraph)
	}
	if highFrag {
		sb.WriteString(highFragParagraph)
	}
	if bigClientBuf {
		sb.WriteString(bigClientBufParagraph)
	}
	if bigSlaveBuf {
		sb.WriteString(bigSlaveBufParagraph)
	}
	sb.WriteString(doctorEpilogue)
	return sb.String()
}
