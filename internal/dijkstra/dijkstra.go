// seehuhn.de/go/colorconv - convert colour values between colour spaces
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dijkstra finds shortest paths in small graphs.
package dijkstra

// ShortestPath implements Dijkstra's algorithm
// https://en.wikipedia.org/wiki/Dijkstra%27s_algorithm
//
//	vertices: 0, 1, ..., n-1
//	edges: (i, j) with cost(i, j) >= 0; a negative cost means no edge
//
// The function returns the total cost and the vertices along the path,
// including start and end.  If end cannot be reached from start, the last
// return value is false.  Ties are broken in favour of vertices with lower
// indices, so that the result is deterministic.
func ShortestPath(cost func(i, j int) int, n, start, end int) (int, []int, bool) {
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}
	dist[start] = 0

	for {
		pos := -1
		for i := 0; i < n; i++ {
			if done[i] || dist[i] < 0 {
				continue
			}
			if pos < 0 || dist[i] < dist[pos] {
				pos = i
			}
		}
		if pos < 0 {
			return 0, nil, false
		}
		if pos == end {
			break
		}
		done[pos] = true

		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			c := cost(pos, i)
			if c < 0 {
				continue
			}
			alt := dist[pos] + c
			if dist[i] < 0 || alt < dist[i] {
				dist[i] = alt
				prev[i] = pos
			}
		}
	}

	var res []int
	for pos := end; pos >= 0; pos = prev[pos] {
		res = append(res, pos)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return dist[end], res, true
}
