// Package insights 将学习事件宽表构建为 课程 → 章节 → 单元 → 学员 → 活动 → 概念 的层级结构，
// 并计算各层级的汇总指标与诊断标记。
//
// 包内不做任何 I/O，也不持有跨调用的可变状态：Build 每次都从完整输入重新构建，
// 返回的 *model.Course 构建完成后只读，可在多个 goroutine 间共享。
// 学员学习模式诊断与概念难度排行在已构建的层级上按需计算。
package insights
