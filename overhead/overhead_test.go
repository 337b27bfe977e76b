package overhead

import (
	"strings"
	"testing"

	"github.com/tx469541153/redis-code-reading/keyspace"
)

func TestComputePerDatabaseOverhead(t *testing.T) {
	db := keyspace.New(16, 4)
	db.Set("a", nil, false)
	db.Set("b", nil, true)

	clients := keyspace.NewClientList()
	mh := Compute([]*keyspace.Keyspace{db}, clients, 0, 0)

	if len(mh.PerDB) != 1 {
		t.Fatalf("len(PerDB) = %d, want 1", len(mh.PerDB))
	}
	wantMain := int64(2)*(dictEntrySize+objectHeaderSize) + int64(16)*pointerSize
	wantExpires := int64(1)*dictEntrySize + int64(4)*pointerSize
	if mh.PerDB[0].OverheadHTMain != wantMain {
		t.Errorf("OverheadHTMain = %d, want %d", mh.PerDB[0].OverheadHTMain, wantMain)
	}
	if mh.PerDB[0].OverheadHTExpires != wantExpires {
		t.Errorf("OverheadHTExpires = %d, want %d", mh.PerDB[0].OverheadHTExpires, wantExpires)
	}
}

func TestComputeClientPartition(t *testing.T) {
	db := keyspace.New(16, 4)
	clients := keyspace.NewClientList()
	clients.Add(keyspace.Client{OutputBufferBytes: 10, QueryBufferBytes: 5, IsReplica: false})
	clients.Add(keyspace.Client{OutputBufferBytes: 20, QueryBufferBytes: 0, IsReplica: true})

	mh := Compute([]*keyspace.Keyspace{db}, clients, 0, 0)
	if mh.NumNormalClients != 1 || mh.NumReplicas != 1 {
		t.Fatalf("NumNormalClients=%d NumReplicas=%d", mh.NumNormalClients, mh.NumReplicas)
	}
	if mh.ClientsNormal <= 0 || mh.ClientsSlaves <= 0 {
		t.Fatalf("ClientsNormal=%d ClientsSlaves=%d", mh.ClientsNormal, mh.ClientsSlaves)
	}
}

func TestComputeDatasetIsTotalMinusOverhead(t *testing.T) {
	db := keyspace.New(16, 4)
	clients := keyspace.NewClientList()
	mh := Compute([]*keyspace.Keyspace{db}, clients, 100, 50)

	if mh.Dataset != mh.TotalAllocated-mh.OverheadTotal {
		t.Fatalf("Dataset = %d, want TotalAllocated(%d) - OverheadTotal(%d)", mh.Dataset, mh.TotalAllocated, mh.OverheadTotal)
	}
}

func TestDoctorEmptyInstance(t *testing.T) {
	got := Doctor(Overhead{TotalAllocated: 1024})
	if got != emptyInstanceMessage {
		t.Fatalf("Doctor() = %q, want the empty-instance message", got)
	}
}

func TestDoctorNoIssues(t *testing.T) {
	got := Doctor(Overhead{
		TotalAllocated: 10 * 1024 * 1024,
		PeakAllocated:  10 * 1024 * 1024,
		Fragmentation:  1.0,
	})
	if got != noIssuesMessage {
		t.Fatalf("Doctor() = %q, want the no-issues message", got)
	}
}

func TestDoctorFlagsAllIndependently(t *testing.T) {
	mh := Overhead{
		TotalAllocated:   10 * 1024 * 1024,
		PeakAllocated:    20 * 1024 * 1024, // ratio 2.0 > 1.5: big_peak
		Fragmentation:    1.5,              // > 1.4: high_frag
		ClientsNormal:    1024 * 1024,      // / 1 client > 200KiB: big_client_buf
		NumNormalClients: 1,
		ClientsSlaves:    20 * 1024 * 1024, // / 1 replica > 10MiB: big_slave_buf
		NumReplicas:      1,
	}
	got := Doctor(mh)
	for _, want := range []string{bigPeakParagraph, highFragParagraph, bigClientBufParagraph, bigSlaveBufParagraph} {
		if !strings.Contains(got, want) {
			t.Errorf("Doctor() missing expected paragraph %q", want[:30])
		}
	}
}
