package metrics

const Namespace = "bbs"
