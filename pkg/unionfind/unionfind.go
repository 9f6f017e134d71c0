package unionfind

import (
	"errors"
	"fmt"
)

// UnionFind 是固定容量的并查集结构，支持路径压缩和按秩合并
// 元素用 [0, n) 的整数下标表示，n 在构造之后不再变化
type UnionFind struct {
	parent []int
	rank   []int
	size   []int // 每个集合的大小，只在根节点处有意义
	count  int   // 剩余集合数量
}

// OutOfRangeError 表示下标参数超出了 [0, n) 的范围
type OutOfRangeError struct {
	Index int // 越界的下标
	Size  int // 结构的元素总数 n
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("unionfind: index %d out of range [0, %d)", e.Index, e.Size)
}

// IsOutOfRange 判断当前的错误是否是下标越界错误
func IsOutOfRange(err error) bool {
	var oor *OutOfRangeError
	return errors.As(err, &oor)
}

// NewUnionFind 初始化并查集，元素范围为 [0, n)，初始时每个元素自成一个集合
// n 为 0 时结构为空，任何下标都会越界
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	rank := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{parent: parent, rank: rank, size: size, count: n}
}

// checkIndex 在访问 parent/rank 之前校验下标，越界的调用不会改动任何状态
func (uf *UnionFind) checkIndex(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return &OutOfRangeError{Index: x, Size: len(uf.parent)}
	}
	return nil
}

// Find 查找元素所在集合的根节点（带路径压缩）
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.checkIndex(x); err != nil {
		return 0, err
	}
	return uf.find(x), nil
}

// find 是不做越界检查的内部版本，把路径上的节点全部压到根下面
func (uf *UnionFind) find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.find(uf.parent[x])
	}
	return uf.parent[x]
}

// Union 合并两个元素所在的集合（按秩优化），返回合并后集合的根节点
// 秩相同时把 x 的根挂到 y 的根下面，y 的根成为新的根并且秩加一
// 两个元素已经在同一个集合时不做任何合并，直接返回共同的根
func (uf *UnionFind) Union(x, y int) (int, error) {
	if err := uf.checkIndex(x); err != nil {
		return 0, err
	}
	if err := uf.checkIndex(y); err != nil {
		return 0, err
	}

	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return rootX, nil // 已经在同一个集合
	}

	var root int
	if uf.rank[rootX] < uf.rank[rootY] {
		uf.parent[rootX] = rootY
		uf.size[rootY] += uf.size[rootX]
		root = rootY
	} else if uf.rank[rootX] > uf.rank[rootY] {
		uf.parent[rootY] = rootX
		uf.size[rootX] += uf.size[rootY]
		root = rootX
	} else {
		uf.parent[rootX] = rootY
		uf.rank[rootY]++
		uf.size[rootY] += uf.size[rootX]
		root = rootY
	}
	uf.count--
	return root, nil
}

// Connected 判断两个元素是否在同一个集合
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	if err := uf.checkIndex(x); err != nil {
		return false, err
	}
	if err := uf.checkIndex(y); err != nil {
		return false, err
	}
	return uf.find(x) == uf.find(y), nil
}

// Size 返回某个元素所在集合的大小
func (uf *UnionFind) Size(x int) (int, error) {
	if err := uf.checkIndex(x); err != nil {
		return 0, err
	}
	return uf.size[uf.find(x)], nil
}

// Count 返回当前还剩下的集合数量
func (uf *UnionFind) Count() int {
	return uf.count
}
