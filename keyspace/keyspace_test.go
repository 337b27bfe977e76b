package keyspace

import "testing"

func TestSetFindDelete(t *testing.T) {
	ks := New(16, 4)
	if ks.Find("missing") != nil {
		t.Fatal("Find on empty keyspace must return nil")
	}

	ks.Set("k", nil, true)
	e := ks.Find("k")
	if e == nil || !e.HasExpire {
		t.Fatalf("Find(%q) = %+v", "k", e)
	}
	if ks.KeyCount() != 1 || ks.KeysWithExpire() != 1 {
		t.Fatalf("KeyCount=%d KeysWithExpire=%d", ks.KeyCount(), ks.KeysWithExpire())
	}

	if !ks.Delete("k") {
		t.Fatal("Delete must report true for a present key")
	}
	if ks.Delete("k") {
		t.Fatal("Delete must report false for an absent key")
	}
}

func TestClientListTotalsPartitionByReplicaFlag(t *testing.T) {
	cl := NewClientList()
	cl.Add(Client{OutputBufferBytes: 100, QueryBufferBytes: 50, IsReplica: false})
	cl.Add(Client{OutputBufferBytes: 1000, QueryBufferBytes: 0, IsReplica: true})

	normal, slaves, numNormal, numReplicas := cl.Totals()
	if numNormal != 1 || numReplicas != 1 {
		t.Fatalf("numNormal=%d numReplicas=%d", numNormal, numReplicas)
	}
	if normal != 150+clientStructSize {
		t.Fatalf("normal = %d, want %d", normal, 150+clientStructSize)
	}
	if slaves != 1000+clientStructSize {
		t.Fatalf("slaves = %d, want %d", slaves, 1000+clientStructSize)
	}
}

func TestReplyChannelRecordsLastError(t *testing.T) {
	rc := &ReplyChannel{}
	if rc.LastError() != "" {
		t.Fatal("LastError must start empty")
	}
	rc.ReplyError("boom")
	if rc.LastError() != "boom" {
		t.Fatalf("LastError() = %q, want %q", rc.LastError(), "boom")
	}
}
