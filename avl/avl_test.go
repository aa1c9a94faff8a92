// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/bitmark-inc/forest/avl"
	"github.com/bitmark-inc/forest/fault"
	"github.com/bitmark-inc/forest/item"
)

func TestListShort(t *testing.T) {
	addList := []item.String{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doIterate(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates are rejected and do not
// increment the node count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []item.String{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doIterate(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []item.String{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doIterate(t, addList)
	doGet(t, addList)
}

// verify the full invariant set, aborting the test on failure
func verify(t *testing.T, tree *avl.Tree, stage string) {
	if !tree.CheckUp() {
		tree.Print(true)
		t.Fatalf("%s: inconsistent parent links", stage)
	}
	if !tree.CheckCounts() {
		tree.Print(true)
		t.Fatalf("%s: inconsistent sub-tree counts", stage)
	}
	if !tree.CheckBalance() {
		tree.Print(true)
		t.Fatalf("%s: AVL height condition broken", stage)
	}
	if !tree.CheckOrder() {
		tree.Print(true)
		t.Fatalf("%s: keys out of order", stage)
	}
}

// add a key list, then delete prefixes of increasing length and
// check the tree stays consistent throughout
func doList(t *testing.T, addList []item.String) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[item.String]struct{})

		tree := avl.New()
		inserted := make(map[item.String]struct{})
		for _, key := range addList {
			err := tree.Insert(key, "data:"+key.String())
			if _, ok := inserted[key]; ok {
				if fault.ErrKeyAlreadyExists != err {
					t.Fatalf("duplicate insert of %q returned: %v  expected: %v", key, err, fault.ErrKeyAlreadyExists)
				}
			} else if nil != err {
				t.Fatalf("insert of %q returned: %v", key, err)
			}
			inserted[key] = struct{}{}
		}

		verify(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete of %q returned error: %v", key, err)
			}
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		verify(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete of %q returned error: %v", key, err)
			}
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			tree.Print(true)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// iterate the tree forwards and backwards to check Next/Prev
func doIterate(t *testing.T, addList []item.String) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Upsert(key, "data:"+key.String())
	}

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(item.String(expected[i])) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(item.String(expected[i])) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, key := range expected {
		_, err := tree.Delete(item.String(key))
		if nil != err {
			t.Fatalf("delete of %q returned error: %v", key, err)
		}
	}

	if !tree.IsEmpty() {
		tree.Print(true)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []item.String) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Upsert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(item.String(key)) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		node1, index1 := tree.Search(item.String(key))
		if nil == node1 {
			t.Fatalf("[%d]: search: %q returned nil", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}

	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			_, err := tree.Delete(item.String(key))
			if nil != err {
				t.Fatalf("delete of %q returned error: %v", key, err)
			}
		}
	}

	// check odd elements are all present
odd_scan:
	for index, key := range expected {
		if 0 == index%2 {
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(item.String(key)) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
	}
	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
}

func makeKey() item.String {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return item.String(fmt.Sprintf("%04d", n%10000))
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]item.String, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Upsert(key, "data:"+key.String())
		if !tree.CheckBalance() {
			tree.Print(true)
			t.Fatalf("height condition broken after insert of %q", key)
		}
	}

	verify(t, tree, "random add")

	for _, key := range d {
		tree.Delete(key)
		if !tree.CheckUp() || !tree.CheckBalance() {
			tree.Print(true)
			t.Fatalf("inconsistent tree after delete of %q", key)
		}
	}

	verify(t, tree, "random delete")

	// add back the test value
	testKey := item.String("500")
	const testValue = "just testing data: test 500 value"
	tree.Upsert(testKey, testValue)

	verify(t, tree, "test value added")

	doIterate(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv, _ := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// search must not modify anything: repeat and compare
	tv2, _ := tree.Search(testKey)
	if tv != tv2 {
		t.Fatalf("search not idempotent: %p → %p", tv, tv2)
	}

	// delete the test value, and check it returns the correct
	// value and is no longer in the tree
	value, err := tree.Delete(testKey)
	if nil != err {
		t.Fatalf("delete returned error: %v", err)
	}
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv, _ = tree.Search(testKey)
	if nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
}

// check that upserted nodes can be overwritten
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []item.String{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New()
	for _, key := range addList {
		err := tree.Insert(key, "data:"+key.String())
		if nil != err {
			t.Fatalf("insert of %q returned error: %v", key, err)
		}
	}

	verify(t, tree, "add")

	// overwrite a key
	oKey := item.String("05")
	oIndex := 4 // zero based index
	const newData = "new content for 05"
	if added := tree.Upsert(oKey, newData); added {
		t.Fatal("upsert of existing key reported a new node")
	}

	verify(t, tree, "upsert")

	// check overwrite
	node1, index1 := tree.Search(oKey)
	if oIndex != index1 {
		t.Errorf("index1: %d  expected %d", index1, oIndex)
	}
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// a plain insert must reject and must not modify the stored value
	if err := tree.Insert(oKey, "rejected content"); fault.ErrKeyAlreadyExists != err {
		t.Fatalf("insert of existing key returned: %v  expected: %v", err, fault.ErrKeyAlreadyExists)
	}
	nodeR, _ := tree.Search(oKey)
	if newData != nodeR.Value() {
		t.Fatalf("rejected insert changed data to: %q", nodeR.Value())
	}

	// delete a node so the oKey node moves
	dKey := item.String("06")
	_, err := tree.Delete(dKey)
	if nil != err {
		t.Fatalf("delete of %q returned error: %v", dKey, err)
	}

	// ensure node did not move
	node2, index2 := tree.Search(oKey)
	if oIndex != index2 {
		t.Errorf("index2: %d  expected %d", index2, oIndex)
	}
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}

	verify(t, tree, "delete")
}

func TestDeleteMisses(t *testing.T) {
	tree := avl.New()

	// deleting from an empty tree is a distinct condition
	if _, err := tree.Delete(item.String("42")); fault.ErrEmptyTree != err {
		t.Fatalf("delete on empty tree returned: %v  expected: %v", err, fault.ErrEmptyTree)
	}

	if err := tree.Insert(item.String("42"), "forty-two"); nil != err {
		t.Fatalf("insert returned error: %v", err)
	}

	if _, err := tree.Delete(item.String("24")); fault.ErrKeyNotFound != err {
		t.Fatalf("delete of absent key returned: %v  expected: %v", err, fault.ErrKeyNotFound)
	}

	// deleting the sole remaining key yields an empty tree, not an error
	value, err := tree.Delete(item.String("42"))
	if nil != err {
		t.Fatalf("delete of sole key returned error: %v", err)
	}
	if "forty-two" != value {
		t.Fatalf("delete returned: %q", value)
	}
	if !tree.IsEmpty() || nil != tree.Root() {
		t.Fatal("tree not empty after deleting sole key")
	}
}

func TestSearchValue(t *testing.T) {
	tree := avl.New()
	tree.Insert(item.String("alpha"), 1)
	tree.Insert(item.String("beta"), 2)

	value, err := tree.SearchValue(item.String("beta"))
	if nil != err {
		t.Fatalf("search returned error: %v", err)
	}
	if 2 != value {
		t.Fatalf("search returned: %v  expected: 2", value)
	}

	if _, err = tree.SearchValue(item.String("gamma")); fault.ErrKeyNotFound != err {
		t.Fatalf("search of absent key returned: %v  expected: %v", err, fault.ErrKeyNotFound)
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []item.String{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []item.String{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

// a key whose comparator reports order as an arbitrary signed
// difference rather than strictly -1, 0 or +1
type diff int

func (d diff) Compare(x interface{}) int {
	return int(d) - int(x.(diff))
}

func (d diff) String() string {
	return strconv.Itoa(int(d))
}

// comparators only promise the sign of the result, so keys that are
// far apart must still be treated as distinct
func TestComparatorSign(t *testing.T) {
	tree := avl.New()

	keys := []diff{50, 10, 90, 30, 70, 20, 80}
	for _, key := range keys {
		err := tree.Insert(key, int(key))
		if nil != err {
			t.Fatalf("insert of %d returned: %v", key, err)
		}
		verify(t, tree, "add")
	}
	if len(keys) != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(keys))
	}

	for _, key := range keys {
		node, _ := tree.Search(key)
		if nil == node {
			t.Fatalf("search of %d returned nil", key)
		}
		if int(key) != node.Value().(int) {
			t.Fatalf("value: %v  expected: %d", node.Value(), key)
		}
	}
	if node, _ := tree.Search(diff(60)); nil != node {
		t.Fatalf("search of absent key returned: %v", node.Key())
	}

	if err := tree.Insert(diff(30), 0); fault.ErrKeyAlreadyExists != err {
		t.Fatalf("duplicate insert returned: %v", err)
	}

	expected := []diff{10, 20, 30, 50, 70, 80, 90}
	for i, want := range expected {
		node := tree.Get(i)
		if nil == node || want != node.Key().(diff) {
			t.Fatalf("get %d: %v  expected: %d", i, node, want)
		}
	}

	if _, err := tree.Delete(diff(50)); nil != err {
		t.Fatalf("delete of 50 returned: %v", err)
	}
	verify(t, tree, "delete")
	if node, _ := tree.Search(diff(50)); nil != node {
		t.Fatalf("deleted key still present")
	}
	if node, _ := tree.Search(diff(70)); nil == node {
		t.Fatalf("delete removed an unrelated key")
	}
}
