package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func record(m *Mapper[*fakeView]) *[]Change {
	var changes []Change
	m.AddListener(func(c Change) { changes = append(changes, c) })
	return &changes
}

func TestAppendAfterHeader(t *testing.T) {
	p := &fakeProvider{count: 5, header: true}
	m, _ := newTestMapper(p)
	changes := record(m)

	p.count = 8
	m.OnContentReplaced(8, 5)

	require.Equal(t, []Change{{Kind: ChangeInserted, Start: 6, Count: 3}}, *changes)
	require.Equal(t, "inserted[6,9)", (*changes)[0].String())
}

func TestAppendWithoutHeader(t *testing.T) {
	p := &fakeProvider{count: 5}
	m, _ := newTestMapper(p)
	changes := record(m)

	p.count = 7
	m.NotifyAppended(5, 2)

	require.Equal(t, []Change{{Kind: ChangeInserted, Start: 5, Count: 2}}, *changes)
}

func TestReplaceFromEmptyIsReset(t *testing.T) {
	p := &fakeProvider{count: 5, header: true}
	m, _ := newTestMapper(p)
	changes := record(m)

	m.OnContentReplaced(5, 0)
	m.OnContentReplaced(0, 0)

	require.Equal(t, []Change{{Kind: ChangeReset}, {Kind: ChangeReset}}, *changes)
}

func TestShrinkIsReset(t *testing.T) {
	p := &fakeProvider{count: 2}
	m, _ := newTestMapper(p)
	changes := record(m)

	m.OnContentReplaced(2, 5)
	require.Equal(t, []Change{{Kind: ChangeReset}}, *changes)
}

func TestEmptyAppendIsSilent(t *testing.T) {
	p := &fakeProvider{count: 3}
	m, _ := newTestMapper(p)
	changes := record(m)

	m.OnContentReplaced(3, 3)
	m.NotifyAppended(3, 0)
	require.Empty(t, *changes)
}

func TestHeaderAndFooterChanged(t *testing.T) {
	p := &fakeProvider{count: 3}
	m, _ := newTestMapper(p)
	changes := record(m)

	m.NotifyHeaderChanged()
	m.NotifyFooterChanged()
	require.Empty(t, *changes)

	p.header = true
	p.footer = true
	m.NotifyHeaderChanged()
	m.NotifyFooterChanged()
	require.Equal(t, []Change{
		{Kind: ChangeItemChanged, Start: 0, Count: 1},
		{Kind: ChangeItemChanged, Start: 4, Count: 1},
	}, *changes)
}

func TestRemoveListener(t *testing.T) {
	p := &fakeProvider{}
	m, _ := newTestMapper(p)

	var first, second int
	removeFirst := m.AddListener(func(Change) { first++ })
	m.AddListener(func(Change) { second++ })

	m.NotifyReset()
	removeFirst()
	removeFirst()
	m.NotifyReset()

	require.Equal(t, 1, first)
	require.Equal(t, 2, second)

	noop := m.AddListener(nil)
	noop()
}

func TestListenerMayUnsubscribeDuringNotify(t *testing.T) {
	p := &fakeProvider{}
	m, _ := newTestMapper(p)

	var calls int
	var remove func()
	remove = m.AddListener(func(Change) {
		calls++
		remove()
	})
	m.NotifyReset()
	m.NotifyReset()
	require.Equal(t, 1, calls)
}
